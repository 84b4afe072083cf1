package usecase

import (
	"context"

	"github.com/secmon-lab/cmkdiscovery/pkg/domain/model"
)

// DiscoveryUseCase defines the interface for triggering service discovery
type DiscoveryUseCase interface {
	// Invoke runs one discovery request and reports its outcome
	Invoke(ctx context.Context, req model.InvocationRequest) (*model.InvocationResult, error)
}

var _ DiscoveryUseCase = (*Discovery)(nil)
