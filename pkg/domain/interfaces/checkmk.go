package interfaces

import (
	"context"

	"github.com/secmon-lab/cmkdiscovery/pkg/domain/model"
)

// CheckmkClient triggers actions on the Checkmk REST API
type CheckmkClient interface {
	// InvokeDiscovery returns the HTTP status code, or an error when no response was received
	InvokeDiscovery(ctx context.Context, req model.InvocationRequest) (int, error)
}
