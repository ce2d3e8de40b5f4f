package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test inside an empty directory so no configs/ or .env
// from the repository leak in.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "quoteboard", cfg.App.Name)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultTLSPort, cfg.Server.TLS.Port)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, DefaultCopyDelay, cfg.Page.CopyDelay)
	assert.Equal(t, 100*time.Millisecond, cfg.Client.Retry.InitialInterval)
	assert.Equal(t, "http://localhost:840", cfg.Services.Board.BaseURL)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_PAGE_COPY_DELAY", "10ms")
	t.Setenv("APP_SERVICES_BOARD_BASE_URL", "http://board:840")
	t.Setenv("APP_LOG_FILE_MAX_SIZE", "7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 10*time.Millisecond, cfg.Page.CopyDelay)
	assert.Equal(t, "http://board:840", cfg.Services.Board.BaseURL)
	assert.Equal(t, 7, cfg.Log.File.MaxSizeMB)
}

func TestLoad_ProfileAndDotEnv(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "test.yaml"), []byte(`
storage:
  driver: sqlite
  dsn: file:board.db
page:
  copy_delay: 50ms
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_LOG_FORMAT=pretty\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("APP_LOG_FORMAT") })

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "file:board.db", cfg.Storage.DSN)
	assert.Equal(t, 50*time.Millisecond, cfg.Page.CopyDelay)
	assert.Equal(t, "pretty", cfg.Log.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "base.yaml"), []byte("server: [oops"), 0o600))

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

func TestValidate_Failures(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Storage.Driver = DriverPostgres
	cfg.Storage.DSN = ""
	cfg.Log.Format = "xml"

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.dsn is required unless Driver memory")
	assert.Contains(t, err.Error(), "log.format must be one of")
}

func TestTLSConfig_Available(t *testing.T) {
	dir := t.TempDir()
	cert := filepath.Join(dir, "cert.pem")
	key := filepath.Join(dir, "key.pem")

	tls := TLSConfig{CertFile: cert, KeyFile: key}
	assert.False(t, tls.Available())

	require.NoError(t, os.WriteFile(cert, []byte("c"), 0o600))
	assert.False(t, tls.Available())

	require.NoError(t, os.WriteFile(key, []byte("k"), 0o600))
	assert.True(t, tls.Available())

	assert.False(t, TLSConfig{}.Available())
}

func TestFormatFieldPath(t *testing.T) {
	assert.Equal(t, "storage.driver", formatFieldPath("Config.Storage.Driver"))
	assert.Equal(t, "port", formatFieldPath("Port"))
}
