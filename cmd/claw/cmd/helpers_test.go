package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
)

// testEnv is an isolated config dir, install dir and fake API server.
type testEnv struct {
	mux        *http.ServeMux
	server     *httptest.Server
	configDir  string
	installDir string

	mu       sync.Mutex
	requests []recordedRequest
}

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

// newTestEnv points the CLI at a fresh httptest server. token may be empty
// to simulate a logged-out user.
func newTestEnv(t *testing.T, token string) *testEnv {
	t.Helper()

	env := &testEnv{
		mux:        http.NewServeMux(),
		configDir:  t.TempDir(),
		installDir: t.TempDir(),
	}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		env.mu.Lock()
		env.requests = append(env.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
			Body:   string(body),
		})
		env.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
		env.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(env.server.Close)

	t.Setenv("OPENCLAW_CONFIG_DIR", env.configDir)
	t.Setenv("OPENCLAW_API_URL", env.server.URL)
	t.Setenv("OPENCLAW_INSTALL_DIR", env.installDir)
	t.Setenv("OPENCLAW_TOKEN", token)
	t.Setenv("OPENCLAW_NO_KEYRING", "1")
	t.Setenv("OPENCLAW_HOME", "")
	t.Setenv("OPENCLAW_LOG_LEVEL", "")
	t.Setenv("NO_COLOR", "1")
	return env
}

// handle registers a handler that replies with status and v as JSON.
func (e *testEnv) handle(pattern string, status int, v any) {
	e.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, v)
	})
}

// last returns the most recent request matching method and path.
func (e *testEnv) last(t *testing.T, method, path string) recordedRequest {
	t.Helper()
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := len(e.requests) - 1; i >= 0; i-- {
		r := e.requests[i]
		if r.Method == method && r.Path == path {
			return r
		}
	}
	t.Fatalf("no %s %s request recorded", method, path)
	return recordedRequest{}
}

// count returns how many requests hit method and path.
func (e *testEnv) count(method, path string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, r := range e.requests {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// decodeBody unmarshals a recorded JSON body into a generic map.
func decodeBody(t *testing.T, r recordedRequest) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(r.Body), &m); err != nil {
		t.Fatalf("request body %q is not JSON: %v", r.Body, err)
	}
	return m
}

// runCmd calls run with cmd wired to in-memory streams.
func runCmd(t *testing.T, cmd *cobra.Command, run func(*cobra.Command, []string) error, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	defer func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
		cmd.SetIn(nil)
	}()

	err := run(cmd, args)
	return out.String(), errOut.String(), err
}
