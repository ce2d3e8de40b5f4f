package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quoteboard/internal/adapters/storage/memory"
	"github.com/jsamuelsen/quoteboard/internal/app"
	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/platform/config"
	"github.com/jsamuelsen/quoteboard/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxRequestSize:  1 << 10,
	}
}

func newBoardRouter(t *testing.T, quotes ...domain.Quote) *gin.Engine {
	t.Helper()

	logger := discardLogger()

	page, err := handlers.NewPageHandler(fstest.MapFS{
		"index.html":      {Data: []byte("<html></html>")},
		"styles/index.js": {Data: []byte("")},
	})
	require.NoError(t, err)

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:      logger,
		ServiceName: "quoteboard-test",
		Timeout:     time.Second,
		Health:      handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.NewBuildInfo("test", "abc", "now")),
		Quotes: handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{
			Repository: memory.NewQuoteStore(quotes...),
			Logger:     logger,
		})),
		Links: handlers.NewLinkHandler(app.NewLinkService(app.LinkServiceConfig{
			Repository: memory.NewLinkStore(),
			Logger:     logger,
		})),
		Page: page,
	})

	return engine
}

func TestSetupRouter_Routes(t *testing.T) {
	routes := newBoardRouter(t).Routes()

	got := make(map[string]bool, len(routes))
	for _, r := range routes {
		got[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /quote", "GET /quotes", "GET /quotes/:id", "POST /quotes",
		"POST /shorten", "GET /path/:short", "DELETE /shorten/:short",
		"GET /", "GET /index.html", "GET /styles/*filepath", "GET /greet/:name",
		"GET /-/live", "GET /-/ready", "GET /-/build", "GET /-/metrics",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}
}

func TestSetupRouter_Headers(t *testing.T) {
	engine := newBoardRouter(t, domain.Quote{ID: "q-1", Text: "Bazinga, punk!", Speaker: "Sheldon Cooper"})

	req := httptest.NewRequest(http.MethodGet, "/quote", http.NoBody)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("X-Correlation-ID", "corr-1")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "corr-1", w.Header().Get("X-Correlation-ID"))
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RunAndShutdown(t *testing.T) {
	srv := New(testServerConfig(), discardLogger())
	srv.Engine().GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	require.NoError(t, srv.Listen())
	require.Len(t, srv.Addrs(), 1)
	assert.False(t, srv.TLSEnabled())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", srv.Addrs()[0]))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenFailure(t *testing.T) {
	first := New(testServerConfig(), discardLogger())
	require.NoError(t, first.Listen())

	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	cfg := testServerConfig()
	_, port, _ := strings.Cut(first.Addrs()[0], ":")
	_, err := fmt.Sscanf(port, "%d", &cfg.Port)
	require.NoError(t, err)

	second := New(cfg, discardLogger())
	require.Error(t, second.Run(context.Background()))
}

func TestServer_TLSEndpointNeedsBothFiles(t *testing.T) {
	dir := t.TempDir()
	cert := filepath.Join(dir, "cert.pem")
	key := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(cert, []byte("x"), 0o600))

	cfg := testServerConfig()
	cfg.TLS = config.TLSConfig{CertFile: cert, KeyFile: key, Port: 0}

	assert.False(t, New(cfg, discardLogger()).TLSEnabled())

	require.NoError(t, os.WriteFile(key, []byte("x"), 0o600))
	assert.True(t, New(cfg, discardLogger()).TLSEnabled())
}

func TestMaxBodySize(t *testing.T) {
	srv := New(testServerConfig(), discardLogger())
	srv.Engine().POST("/echo", func(c *gin.Context) {
		var v map[string]any
		if err := c.ShouldBindJSON(&v); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.JSON(http.StatusOK, v)
	})

	big := `{"text":"` + strings.Repeat("a", 2048) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a":1}`))
	req.Header.Set("Content-Type", "application/json")

	w = httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
}
