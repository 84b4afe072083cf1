package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// DiscoveryMode represents the discovery variant requested from Checkmk
type DiscoveryMode string

const (
	DiscoveryModeNew            DiscoveryMode = "new"
	DiscoveryModeRemove         DiscoveryMode = "remove"
	DiscoveryModeFixAll         DiscoveryMode = "fix_all"
	DiscoveryModeRefresh        DiscoveryMode = "refresh"
	DiscoveryModeOnlyHostLabels DiscoveryMode = "only_host_labels"

	DefaultDiscoveryMode = DiscoveryModeNew
)

// DiscoveryModes lists every accepted mode in the order Checkmk documents them
var DiscoveryModes = []DiscoveryMode{
	DiscoveryModeNew,
	DiscoveryModeRemove,
	DiscoveryModeFixAll,
	DiscoveryModeRefresh,
	DiscoveryModeOnlyHostLabels,
}

// String returns the string representation of the mode
func (m DiscoveryMode) String() string {
	return string(m)
}

// IsValid checks if the mode is one of the accepted values
func (m DiscoveryMode) IsValid() bool {
	switch m {
	case DiscoveryModeNew, DiscoveryModeRemove, DiscoveryModeFixAll, DiscoveryModeRefresh, DiscoveryModeOnlyHostLabels:
		return true
	default:
		return false
	}
}

// ParseDiscoveryMode converts a raw state value into a DiscoveryMode.
// An empty value selects DefaultDiscoveryMode.
func ParseDiscoveryMode(s string) (DiscoveryMode, error) {
	if s == "" {
		return DefaultDiscoveryMode, nil
	}

	mode := DiscoveryMode(s)
	if !mode.IsValid() {
		return "", goerr.New("invalid discovery mode",
			goerr.V("mode", s),
			goerr.V("choices", DiscoveryModes))
	}
	return mode, nil
}
