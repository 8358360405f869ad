package tasks

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/steamship-core/steamship-go/internal/cmd/base"
)

// fakeServer records request bodies by route and answers with handler.
type fakeServer struct {
	mu       sync.Mutex
	requests map[string][]map[string]any
}

func (s *fakeServer) record(route string, body map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[route] = append(s.requests[route], body)
}

func (s *fakeServer) bodies(route string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[route]
}

func newTestServer(t *testing.T, handler func(route string, body map[string]any) any) (*fakeServer, string) {
	t.Helper()

	fs := &fakeServer{requests: map[string][]map[string]any{}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path[len("/api/v1/"):]

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fs.record(route, body)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(handler(route, body)))
	}))
	t.Cleanup(server.Close)

	return fs, server.URL + "/api/v1/"
}

func newTestBase(ui cli.Ui) *base.Command {
	c := base.NewCommand(hclog.NewNullLogger(), ui)
	c.Fs = afero.NewMemMapFs()
	c.LookupEnv = func(string) (string, bool) { return "", false }
	return c
}

func connArgs(apiBase string, args ...string) []string {
	return append([]string{"-api-base", apiBase, "-api-key", "test-key"}, args...)
}

func taskStatus(id, status, message string) map[string]any {
	return map[string]any{
		"status": map[string]any{
			"taskId":            id,
			"taskStatus":        status,
			"taskStatusMessage": message,
			"taskCreatedOn":     "2026-01-02T03:04:05Z",
		},
	}
}
