package checkmk

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/interfaces"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/model"
	"github.com/tidwall/gjson"
)

// maxProblemBody bounds how much of an error response is read for diagnostics
const maxProblemBody = 64 * 1024

// ClientConfig holds configuration for Client
type ClientConfig struct {
	httpClient         interfaces.HTTPClient
	timeout            time.Duration
	insecureSkipVerify bool
}

// ClientOption is a functional option for configuring Client
type ClientOption func(*ClientConfig)

// WithHTTPClient replaces the underlying HTTP client. Timeout and TLS options
// are ignored when a client is given.
func WithHTTPClient(client interfaces.HTTPClient) ClientOption {
	return func(c *ClientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the overall request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.timeout = d
	}
}

// WithInsecureSkipVerify disables TLS certificate verification
func WithInsecureSkipVerify(skip bool) ClientOption {
	return func(c *ClientConfig) {
		c.insecureSkipVerify = skip
	}
}

// Client talks to the Checkmk REST API
type Client struct {
	httpClient interfaces.HTTPClient
}

// New creates a new Checkmk client
func New(opts ...ClientOption) *Client {
	cfg := &ClientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		hc := &http.Client{Timeout: cfg.timeout}
		if cfg.insecureSkipVerify {
			tr := http.DefaultTransport.(*http.Transport).Clone()
			tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // requested by operator
			hc.Transport = tr
		}
		httpClient = hc
	}

	return &Client{httpClient: httpClient}
}

// InvokeDiscovery sends one discover_services request and returns the HTTP
// status code. A returned error means no response was received.
func (c *Client) InvokeDiscovery(ctx context.Context, req model.InvocationRequest) (int, error) {
	body, err := req.Body()
	if err != nil {
		return model.StatusTransportFailure, goerr.Wrap(err, "failed to build discovery request",
			goerr.T(model.ErrTagConfiguration))
	}

	endpoint := req.Endpoint()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return model.StatusTransportFailure, goerr.Wrap(err, "invalid discovery endpoint",
			goerr.V("endpoint", endpoint),
			goerr.T(model.ErrTagConfiguration))
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", req.Authorization())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return model.StatusTransportFailure, goerr.Wrap(err, "failed to call discovery API",
			goerr.V("endpoint", endpoint),
			goerr.T(model.ErrTagTransport))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		logProblem(ctx, resp)
	}

	return resp.StatusCode, nil
}

// logProblem logs the problem details Checkmk attaches to error responses.
// It only feeds diagnostics and never changes the classified result.
func logProblem(ctx context.Context, resp *http.Response) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxProblemBody))
	if err != nil || !gjson.ValidBytes(data) {
		return
	}

	problem := gjson.GetManyBytes(data, "title", "detail")
	ctxlog.From(ctx).Debug("Checkmk returned problem details",
		slog.Int("status", resp.StatusCode),
		slog.String("title", problem[0].String()),
		slog.String("detail", problem[1].String()),
	)
}
