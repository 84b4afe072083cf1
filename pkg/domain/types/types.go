package types

import (
	"github.com/google/uuid"
)

// InvocationID identifies a single discovery invocation in logs
type InvocationID string

// String returns the string representation
func (id InvocationID) String() string {
	return string(id)
}

// NewInvocationID creates a new InvocationID using UUID v7
func NewInvocationID() InvocationID {
	id, err := uuid.NewV7()
	if err != nil {
		return InvocationID(uuid.New().String())
	}
	return InvocationID(id.String())
}

// HostName represents a host managed by Checkmk
type HostName string

// String returns the string representation
func (h HostName) String() string {
	return string(h)
}

// SiteName represents a Checkmk site
type SiteName string

// String returns the string representation
func (s SiteName) String() string {
	return string(s)
}
