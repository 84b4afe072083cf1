package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/interfaces"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/model"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/types"
)

// Discovery triggers Checkmk service discovery for a single host
type Discovery struct {
	client interfaces.CheckmkClient
}

// NewDiscovery creates a new Discovery use case
func NewDiscovery(client interfaces.CheckmkClient) *Discovery {
	return &Discovery{client: client}
}

// Invoke validates the request, sends it once and classifies the response.
// The returned result is never nil. The error is non-nil whenever the result
// is a failure and carries one of model.ErrTagConfiguration,
// model.ErrTagTransport or model.ErrTagAPI.
func (uc *Discovery) Invoke(ctx context.Context, req model.InvocationRequest) (*model.InvocationResult, error) {
	invocationID := types.NewInvocationID()
	logger := ctxlog.From(ctx).With(
		slog.String("invocation_id", invocationID.String()),
		slog.String("host_name", req.HostName.String()),
		slog.String("site", req.Site.String()),
		slog.String("mode", req.Mode.String()),
	)
	ctx = ctxlog.With(ctx, logger)

	if err := req.Validate(); err != nil {
		return model.ConfigurationFailure(err), goerr.Wrap(err, "invalid discovery request", goerr.T(model.ErrTagConfiguration))
	}

	logger.Info("Invoking service discovery")

	status, err := uc.client.InvokeDiscovery(ctx, req)
	if err != nil {
		if goerr.HasTag(err, model.ErrTagConfiguration) {
			return model.ConfigurationFailure(err), err
		}
		result := model.TransportFailure(err)
		logger.Warn("Service discovery request failed", slog.Any("error", err))
		return result, goerr.Wrap(err, "discovery request was not answered", goerr.T(model.ErrTagTransport))
	}

	result := model.Classify(status)
	if result.Failed {
		logger.Warn("Service discovery rejected", slog.Any("result", result))
		return result, goerr.New(result.Msg,
			goerr.V("http_code", status),
			goerr.V("host_name", req.HostName),
			goerr.T(model.ErrTagAPI))
	}

	logger.Info("Service discovery finished", slog.Any("result", result))
	return result, nil
}
