package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmkdiscovery/pkg/cli/config"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/model"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/types"
	"github.com/secmon-lab/cmkdiscovery/pkg/usecase"
	"github.com/secmon-lab/cmkdiscovery/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

func cmdDiscover(stdout io.Writer) *cli.Command {
	var (
		checkmkCfg   config.Checkmk
		discoveryCfg config.Discovery
	)

	flags := joinFlags(
		checkmkCfg.Flags(),
		discoveryCfg.Flags(),
	)

	return &cli.Command{
		Name:  "discover",
		Usage: "Run service discovery on one host and print the result as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			result, err := discover(ctx, &checkmkCfg, &discoveryCfg)
			if writeErr := writeResult(stdout, result); writeErr != nil {
				return goerr.Wrap(writeErr, "failed to write result")
			}
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}
			return nil
		},
	}
}

func discover(ctx context.Context, checkmkCfg *config.Checkmk, discoveryCfg *config.Discovery) (*model.InvocationResult, error) {
	logger := ctxlog.From(ctx)

	if discoveryCfg.ParamsFile != "" {
		params, err := config.LoadParamsFromFile(discoveryCfg.ParamsFile)
		if err != nil {
			return model.ConfigurationFailure(err), err
		}
		params.ApplyTo(checkmkCfg, discoveryCfg)
	}

	logger.Debug("Discovery configuration loaded",
		slog.Any("checkmk", checkmkCfg),
		slog.Any("discovery", discoveryCfg),
	)

	req, err := model.NewInvocationRequest(
		checkmkCfg.ServerURL,
		checkmkCfg.Site,
		checkmkCfg.User,
		types.NewSecret(checkmkCfg.Secret),
		discoveryCfg.HostName,
		discoveryCfg.State,
	)
	if err != nil {
		return model.ConfigurationFailure(err), err
	}

	return usecase.NewDiscovery(checkmkCfg.Configure()).Invoke(ctx, req)
}

func writeResult(w io.Writer, result *model.InvocationResult) error {
	if result == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(result)
}
