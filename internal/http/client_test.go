package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok", http.StatusFound)
	})
	mux.HandleFunc("/moved-missing", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/missing", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/not-modified", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Probe(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(time.Second, "")

	tests := []struct {
		path string
		want bool
	}{
		{"/ok", true},
		{"/missing", false},
		{"/broken", false},
		{"/moved", true},
		{"/moved-missing", false},
		{"/not-modified", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, client.Probe(context.Background(), srv.URL+tt.path))
		})
	}
}

func TestClient_ProbeTimeout(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(50*time.Millisecond, "")

	start := time.Now()
	assert.False(t, client.Probe(context.Background(), srv.URL+"/slow"))
	assert.Less(t, time.Since(start), time.Second)
}

func TestClient_ProbeInvalidURL(t *testing.T) {
	client := NewClient(time.Second, "")
	assert.False(t, client.Probe(context.Background(), "://not a url"))
	assert.False(t, client.Probe(context.Background(), "unknown-scheme://host/file"))
}

func TestClient_ProbeConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(time.Second, "")
	assert.False(t, client.Probe(context.Background(), url+"/gone"))
}

func TestClient_HeadSendsUserAgentAndMethod(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(time.Second, "test-agent")
	status, err := client.Head(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, int32(1), hits.Load())
}

func TestIsReachableStatus(t *testing.T) {
	assert.False(t, IsReachableStatus(199))
	assert.True(t, IsReachableStatus(200))
	assert.True(t, IsReachableStatus(399))
	assert.False(t, IsReachableStatus(400))
	assert.False(t, IsReachableStatus(503))
}
