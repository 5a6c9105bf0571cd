package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dedene/metricool-cli/internal/api"
	"github.com/dedene/metricool-cli/internal/config"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   []byte
}

type fakeMetricool struct {
	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]string
}

func (f *fakeMetricool) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Body: body})
	resp, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "no route")

		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, resp)
}

func (f *fakeMetricool) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r.Method+" "+r.Path)
	}

	return out
}

func (f *fakeMetricool) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests[len(f.requests)-1]
}

type commandEnv struct {
	api    *fakeMetricool
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// setupCommand points every command at a fake API with fixed credentials,
// captured output and a fixed clock.
func setupCommand(t *testing.T, routes map[string]string) *commandEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("METRICOOL_JSON", "")
	t.Setenv("METRICOOL_PLAIN", "")

	fake := &fakeMetricool{routes: routes}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	env := &commandEnv{api: fake, stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}

	oldResolve, oldClient, oldNow := resolveCredentials, newClient, now
	oldStdout, oldStderr := stdout, stderr
	oldLogger := slog.Default()

	resolveCredentials = func() config.Credentials { return config.Credentials{Token: "tok", UserID: "u1"} }
	newClient = func(creds config.Credentials) *api.Client {
		return api.NewClientWithBaseURL(creds.Token, creds.UserID, srv.URL)
	}
	now = func() time.Time { return time.Date(2026, 1, 30, 12, 0, 0, 0, time.UTC) }
	stdout, stderr = env.stdout, env.stderr

	t.Cleanup(func() {
		resolveCredentials, newClient, now = oldResolve, oldClient, oldNow
		stdout, stderr = oldStdout, oldStderr
		slog.SetDefault(oldLogger)
	})

	return env
}
