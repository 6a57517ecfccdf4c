package profiler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *Server {
	t.Helper()

	server := New(0, zerolog.Nop())
	require.NoError(t, server.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})
	return server
}

func TestServer_Addr(t *testing.T) {
	assert.Empty(t, New(0, zerolog.Nop()).Addr(), "no address before Start")

	server := startServer(t)
	assert.Contains(t, server.Addr(), "127.0.0.1:")
}

func TestServer_PortInUse(t *testing.T) {
	first := startServer(t)

	_, port, _ := strings.Cut(first.Addr(), ":")
	n, err := strconv.Atoi(port)
	require.NoError(t, err)

	err = New(n, zerolog.Nop()).Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on port")
}

func TestServer_PprofEndpoints(t *testing.T) {
	server := startServer(t)
	baseURL := "http://" + server.Addr()

	tests := []struct {
		name     string
		endpoint string
	}{
		{name: "index", endpoint: "/debug/pprof/"},
		{name: "cmdline", endpoint: "/debug/pprof/cmdline"},
		{name: "symbol", endpoint: "/debug/pprof/symbol"},
		{name: "heap", endpoint: "/debug/pprof/heap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(baseURL + tt.endpoint)
			require.NoError(t, err, "GET %s", tt.endpoint)
			defer func() {
				_ = resp.Body.Close()
			}()

			assert.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", tt.endpoint)
		})
	}
}
