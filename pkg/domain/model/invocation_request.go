package model

import (
	"encoding/json"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/types"
)

const apiPrefix = "/check_mk/api/1.0"

// InvocationRequest carries everything needed to trigger service discovery on one host
type InvocationRequest struct {
	ServerURL string
	Site      types.SiteName
	User      string
	Secret    types.Secret
	HostName  types.HostName
	Mode      types.DiscoveryMode
}

// NewInvocationRequest builds a validated InvocationRequest. An empty mode selects
// the default mode.
func NewInvocationRequest(serverURL, site, user string, secret types.Secret, hostName, mode string) (InvocationRequest, error) {
	m, err := types.ParseDiscoveryMode(mode)
	if err != nil {
		return InvocationRequest{}, goerr.Wrap(err, "invalid state", goerr.T(ErrTagConfiguration))
	}

	req := InvocationRequest{
		ServerURL: serverURL,
		Site:      types.SiteName(site),
		User:      user,
		Secret:    secret,
		HostName:  types.HostName(hostName),
		Mode:      m,
	}
	if err := req.Validate(); err != nil {
		return InvocationRequest{}, err
	}
	return req, nil
}

// Validate validates the request
func (r InvocationRequest) Validate() error {
	missing := func(name string) error {
		return goerr.New("required parameter is missing",
			goerr.V("parameter", name),
			goerr.T(ErrTagConfiguration))
	}

	if r.ServerURL == "" {
		return missing("server_url")
	}
	if r.Site == "" {
		return missing("site")
	}
	if r.User == "" {
		return missing("automation_user")
	}
	if r.Secret.IsEmpty() {
		return missing("automation_secret")
	}
	if r.HostName == "" {
		return missing("host_name")
	}
	if !r.Mode.IsValid() {
		return goerr.New("invalid state",
			goerr.V("mode", r.Mode),
			goerr.V("choices", types.DiscoveryModes),
			goerr.T(ErrTagConfiguration))
	}
	return nil
}

// Endpoint returns the discover_services action URL for the host.
// Parts are concatenated as given, so ServerURL is expected to end with a slash.
func (r InvocationRequest) Endpoint() string {
	return r.ServerURL + r.Site.String() + apiPrefix +
		"/objects/host/" + r.HostName.String() + "/actions/discover_services/invoke"
}

// Authorization returns the Authorization header value for the automation user
func (r InvocationRequest) Authorization() string {
	return "Bearer " + r.User + " " + r.Secret.Reveal()
}

type invocationBody struct {
	Mode types.DiscoveryMode `json:"mode"`
}

// Body returns the JSON request body
func (r InvocationRequest) Body() ([]byte, error) {
	data, err := json.Marshal(invocationBody{Mode: r.Mode})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal discovery body")
	}
	return data, nil
}

// LogValue returns structured log value
func (r InvocationRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("server_url", r.ServerURL),
		slog.String("site", r.Site.String()),
		slog.String("user", r.User),
		slog.Bool("has_secret", !r.Secret.IsEmpty()),
		slog.String("host_name", r.HostName.String()),
		slog.String("mode", r.Mode.String()),
	)
}
