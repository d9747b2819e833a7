package appium

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// writeJSON encodes data as JSON to the response writer.
func writeJSON(w http.ResponseWriter, data interface{}) {
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeError writes a W3C error reply.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	writeJSON(w, map[string]interface{}{
		"value": map[string]interface{}{
			"error":      code,
			"message":    message,
			"stacktrace": "",
		},
	})
}

type request struct {
	Method string
	Path   string
	Body   string
}

// recorder keeps the requests a test server received.
type recorder struct {
	mu       sync.Mutex
	requests []request
}

func (r *recorder) add(req *http.Request) request {
	body, _ := io.ReadAll(req.Body)
	rec := request{Method: req.Method, Path: req.URL.Path, Body: string(body)}
	r.mu.Lock()
	r.requests = append(r.requests, rec)
	r.mu.Unlock()
	return rec
}

func (r *recorder) all() []request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]request(nil), r.requests...)
}

func (r *recorder) last(t *testing.T) request {
	t.Helper()
	all := r.all()
	require.NotEmpty(t, all, "no request recorded")
	return all[len(all)-1]
}

// newTestClient attaches a client for session "s1" to a test server.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := zaptest.NewLogger(t)
	transport, err := NewHTTPTransport(server.URL, server.Client(), log)
	require.NoError(t, err)
	return NewClient(transport, "s1", append([]Option{WithLogger(log)}, opts...)...)
}

// replyingClient answers every request with {"value": value} and records it.
func replyingClient(t *testing.T, value interface{}, opts ...Option) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		writeJSON(w, map[string]interface{}{"value": value})
	}, opts...)
	return client, rec
}
