//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteboard/internal/adapters/clients"
	"github.com/jsamuelsen/quoteboard/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quoteboard/internal/platform/config"
)

// loadProfile loads a profile from the repository's configs directory.
func loadProfile(t *testing.T, profile string) *config.Config {
	t.Helper()
	t.Chdir("../..")

	cfg, err := config.Load(profile)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	return cfg
}

func TestConfig_Profiles(t *testing.T) {
	for _, profile := range []string{"local", "test"} {
		t.Run(profile, func(t *testing.T) {
			cfg := loadProfile(t, profile)

			assert.Positive(t, cfg.Client.Timeout)
			assert.GreaterOrEqual(t, cfg.Client.Retry.MaxAttempts, 1)
			assert.Equal(t, 800*time.Millisecond, cfg.Page.CopyDelay)
			assert.NotEmpty(t, cfg.Services.Board.BaseURL)
		})
	}
}

func TestConfig_BoardClientFromProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"q-1","text":"Bazinga!","speaker":"Sheldon Cooper"}`))
	}))
	defer server.Close()

	t.Setenv("APP_SERVICES_BOARD_BASE_URL", server.URL)

	cfg := loadProfile(t, "test")
	require.Equal(t, server.URL, cfg.Services.Board.BaseURL)

	client, err := clients.New(clients.FromConfig(cfg.Services.Board, cfg.Client, discardLogger()))
	require.NoError(t, err)

	quote, err := acl.NewBoardClient(client, cfg.Services.Board.Name).Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sheldon Cooper", quote.Speaker)
}

func TestConfig_EnvOverridesClientRetry(t *testing.T) {
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "1")
	t.Setenv("APP_PAGE_COPY_DELAY", "5ms")

	cfg := loadProfile(t, "test")

	assert.Equal(t, 1, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, 5*time.Millisecond, cfg.Page.CopyDelay)
}
