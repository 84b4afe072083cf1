package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/model"
)

const testSecret = "cli-secret-value"

func newCheckmkServer(t *testing.T, status int, calls *atomic.Int32, modes *[]string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		data, _ := io.ReadAll(r.Body)
		var body map[string]string
		_ = json.Unmarshal(data, &body)
		*modes = append(*modes, body["mode"])
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/"
}

func runDiscover(t *testing.T, args ...string) (*model.InvocationResult, error) {
	t.Helper()
	var stdout bytes.Buffer
	argv := append([]string{"cmkdiscovery", "--log-format", "json", "discover"}, args...)
	err := run(context.Background(), argv, &stdout)

	gt.S(t, stdout.String()).NotContains(testSecret)

	var result model.InvocationResult
	gt.NoError(t, json.Unmarshal(stdout.Bytes(), &result)).Required()
	return &result, err
}

func TestDiscoverCommand(t *testing.T) {
	t.Run("success prints changed result", func(t *testing.T) {
		var calls atomic.Int32
		var modes []string
		url := newCheckmkServer(t, http.StatusOK, &calls, &modes)

		result, err := runDiscover(t,
			"--server-url", url,
			"--site", "local",
			"--automation-user", "automation",
			"--automation-secret", testSecret,
			"--host-name", "my_host",
		)
		gt.NoError(t, err)
		gt.Equal(t, *result, model.InvocationResult{
			Changed: true, Failed: false, HTTPCode: 200, Msg: "Discovery successful.",
		})
		gt.Equal(t, modes, []string{"new"})
	})

	t.Run("not found returns failed result and error", func(t *testing.T) {
		var calls atomic.Int32
		var modes []string
		url := newCheckmkServer(t, http.StatusNotFound, &calls, &modes)

		result, err := runDiscover(t,
			"--server-url", url,
			"--site", "local",
			"--automation-user", "automation",
			"--automation-secret", testSecret,
			"--host-name", "my_host",
			"--state", "fix_all",
		)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagAPI))
		gt.Equal(t, *result, model.InvocationResult{
			Changed: false, Failed: true, HTTPCode: 404, Msg: "Not Found: Host could not be found.",
		})
		gt.Equal(t, modes, []string{"fix_all"})
	})

	t.Run("invalid state sends no request", func(t *testing.T) {
		var calls atomic.Int32
		var modes []string
		url := newCheckmkServer(t, http.StatusOK, &calls, &modes)

		result, err := runDiscover(t,
			"--server-url", url,
			"--site", "local",
			"--automation-user", "automation",
			"--automation-secret", testSecret,
			"--host-name", "my_host",
			"--state", "everything",
		)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
		gt.True(t, result.Failed)
		gt.Equal(t, calls.Load(), int32(0))
	})

	t.Run("params file supplies missing flags", func(t *testing.T) {
		var calls atomic.Int32
		var modes []string
		url := newCheckmkServer(t, http.StatusOK, &calls, &modes)

		path := filepath.Join(t.TempDir(), "params.yml")
		gt.NoError(t, os.WriteFile(path, []byte(
			"server_url: "+url+"\n"+
				"site: local\n"+
				"automation_user: automation\n"+
				"automation_secret: "+testSecret+"\n"+
				"host_name: my_host\n"+
				"state: refresh\n"), 0600)).Required()

		result, err := runDiscover(t, "--params-file", path, "--state", "remove")
		gt.NoError(t, err)
		gt.True(t, result.Changed)
		gt.Equal(t, modes, []string{"remove"})
	})
}
