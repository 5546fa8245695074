package source

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetcher_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"nodes": []}`))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, discardLogger())
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes": []}`, string(body))
}

func TestFetcher_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, discardLogger())
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetcher_UnreachableHost(t *testing.T) {
	f := NewFetcher(500*time.Millisecond, discardLogger())
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/nodes.json")
	require.Error(t, err)
}

func TestFetcher_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewFetcher(50*time.Millisecond, discardLogger())
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}
