package checkmk_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/model"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/types"
	"github.com/secmon-lab/cmkdiscovery/pkg/service/checkmk"
)

type capturedRequest struct {
	method string
	path   string
	header http.Header
	body   map[string]string
}

func newCheckmkServer(t *testing.T, status int, captured *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.header = r.Header.Clone()
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &captured.body)

		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"title":"Not Found","status":404,"detail":"Host my_host not found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newRequest(t *testing.T, serverURL, mode string) model.InvocationRequest {
	t.Helper()
	req, err := model.NewInvocationRequest(serverURL+"/", "local", "automation", types.NewSecret("secret-pw"), "my_host", mode)
	gt.NoError(t, err).Required()
	return req
}

func TestClient_InvokeDiscovery(t *testing.T) {
	ctx := context.Background()

	t.Run("sends POST with headers and mode body", func(t *testing.T) {
		var captured capturedRequest
		srv := newCheckmkServer(t, http.StatusOK, &captured)

		client := checkmk.New()
		status, err := client.InvokeDiscovery(ctx, newRequest(t, srv.URL, "refresh"))
		gt.NoError(t, err)
		gt.Equal(t, status, http.StatusOK)

		gt.Equal(t, captured.method, http.MethodPost)
		gt.Equal(t, captured.path, "/local/check_mk/api/1.0/objects/host/my_host/actions/discover_services/invoke")
		gt.Equal(t, captured.header.Get("Accept"), "application/json")
		gt.Equal(t, captured.header.Get("Content-Type"), "application/json")
		gt.Equal(t, captured.header.Get("Authorization"), "Bearer automation secret-pw")
		gt.Equal(t, captured.body["mode"], "refresh")
	})

	t.Run("returns non-200 status without error", func(t *testing.T) {
		var captured capturedRequest
		srv := newCheckmkServer(t, http.StatusNotFound, &captured)

		status, err := checkmk.New().InvokeDiscovery(ctx, newRequest(t, srv.URL, "fix_all"))
		gt.NoError(t, err)
		gt.Equal(t, status, http.StatusNotFound)
		gt.Equal(t, captured.body["mode"], "fix_all")
	})

	t.Run("transport failure is tagged", func(t *testing.T) {
		mock := &mocks.HTTPClientMock{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		}

		status, err := checkmk.New(checkmk.WithHTTPClient(mock)).
			InvokeDiscovery(ctx, newRequest(t, "http://cmk.invalid", "new"))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagTransport))
		gt.Equal(t, status, model.StatusTransportFailure)
		gt.Equal(t, len(mock.DoCalls()), 1)
		gt.S(t, err.Error()).NotContains("secret-pw")
	})

	t.Run("closed server is a transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := checkmk.New().InvokeDiscovery(ctx, newRequest(t, url, "new"))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagTransport))
	})

	t.Run("malformed server url is a configuration error", func(t *testing.T) {
		mock := &mocks.HTTPClientMock{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				t.Fatal("request must not be sent")
				return nil, nil
			},
		}

		_, err := checkmk.New(checkmk.WithHTTPClient(mock)).
			InvokeDiscovery(ctx, newRequest(t, "http://[::1", "new"))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
		gt.Equal(t, len(mock.DoCalls()), 0)
	})
}

func TestClient_TLSVerification(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	t.Run("self-signed certificate is rejected by default", func(t *testing.T) {
		_, err := checkmk.New(checkmk.WithTimeout(5*time.Second)).
			InvokeDiscovery(ctx, newRequest(t, srv.URL, "new"))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagTransport))
	})

	t.Run("insecure skips verification", func(t *testing.T) {
		status, err := checkmk.New(checkmk.WithInsecureSkipVerify(true)).
			InvokeDiscovery(ctx, newRequest(t, srv.URL, "new"))
		gt.NoError(t, err)
		gt.Equal(t, status, http.StatusOK)
	})
}
