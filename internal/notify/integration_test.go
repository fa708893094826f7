package notify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/ghnotify/internal/notify"
	ghsource "github.com/nhle/ghnotify/internal/source/github"
)

// TestSession_AgainstHTTPServer runs fetch, mark read and refetch
// through the real resty-backed client.
func TestSession_AgainstHTTPServer(t *testing.T) {
	var marked atomic.Bool
	var listCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /rate_limit", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rate":{"remaining":4999}}`))
	})
	mux.HandleFunc("GET /notifications", func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)
		assert.Equal(t, "false", r.URL.Query().Get("all"))
		if marked.Load() {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte("[" + validRecord + "]"))
	})
	mux.HandleFunc("PATCH /notifications/threads/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "123", r.PathValue("id"))
		marked.Store(true)
		w.WriteHeader(http.StatusResetContent)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := ghsource.NewClient()
	t.Cleanup(func() { _ = client.Close() })

	s := notify.NewSession(client, notify.Options{
		Token:      "tok",
		APIBaseURL: server.URL,
		UserAgent:  "ghnotify-test",
	})

	res, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, res.List.Len())
	assert.Equal(t, 4999, res.Rate.Remaining)

	entry := res.List.Entries()[1]
	require.NoError(t, s.MarkRead(context.Background(), entry.ThreadID))

	res, err = s.Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.Equal(t, int32(2), listCalls.Load())
}
