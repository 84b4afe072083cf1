package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/model"
)

// Kind names the failure class of err for logs
func Kind(err error) string {
	switch {
	case goerr.HasTag(err, model.ErrTagConfiguration):
		return "configuration"
	case goerr.HasTag(err, model.ErrTagTransport):
		return "transport"
	case goerr.HasTag(err, model.ErrTagAPI):
		return "api"
	default:
		return "unknown"
	}
}

func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("application error", "kind", Kind(err), "error", err)
}
