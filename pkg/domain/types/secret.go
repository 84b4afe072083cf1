package types

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

const redacted = "[REDACTED]"

// Secret holds a credential that must never be printed, logged or serialized.
// Reveal is the only way to read the raw value.
type Secret struct {
	value string
}

// NewSecret wraps a raw credential
func NewSecret(v string) Secret {
	return Secret{value: v}
}

// Reveal returns the raw credential
func (s Secret) Reveal() string {
	return s.value
}

// IsEmpty reports whether no credential was given
func (s Secret) IsEmpty() bool {
	return s.value == ""
}

// String returns a redacted placeholder
func (s Secret) String() string {
	return redacted
}

// GoString returns a redacted placeholder for %#v
func (s Secret) GoString() string {
	return redacted
}

// Format redacts every fmt verb, including the ones that bypass String
func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(redacted))
}

// LogValue implements slog.LogValuer
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// MarshalJSON implements json.Marshaler
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

// MarshalYAML implements yaml.Marshaler
func (s Secret) MarshalYAML() (any, error) {
	return redacted, nil
}
