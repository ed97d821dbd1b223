package marketo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// doerFunc adapts a function to the HTTPDoer interface for transport
// failure injection.
type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// newTestClient starts an httptest server for the handler and returns a
// client pointed at it. The server is torn down with the test.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, "test-client-id", "test-client-secret", opts...)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

// writeAuthResult writes a 200 token response.
func writeAuthResult(t *testing.T, w http.ResponseWriter, result AuthResult) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(result))
}

// tickingClock is a fake clock that advances one millisecond per reading,
// so "immediately after" is always strictly later than "now".
type tickingClock struct {
	mu    sync.Mutex
	base  time.Time
	ticks int
}

func newTickingClock() *tickingClock {
	return &tickingClock{base: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ticks++
	return c.base.Add(time.Duration(c.ticks) * time.Millisecond)
}
