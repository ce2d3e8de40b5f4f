package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteboard/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen/quoteboard/internal/mocks"
	"github.com/jsamuelsen/quoteboard/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func healthRouter(h *HealthHandler) *gin.Engine {
	engine := gin.New()
	h.RegisterRoutes(engine)

	return engine
}

func get(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))

	return w
}

func decodeReadiness(t *testing.T, w *httptest.ResponseRecorder) readiness {
	t.Helper()

	var body readiness
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())

	return body
}

type blockingCheck struct{}

func (blockingCheck) Name() string { return "store-postgres" }

func (blockingCheck) Check(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.0.0", "abc123", "2024-01-15T10:00:00Z")
	assert.Equal(t, BuildInfo{
		Version:   "1.0.0",
		Commit:    "abc123",
		BuildTime: "2024-01-15T10:00:00Z",
		GoVersion: runtime.Version(),
	}, bi)

	assert.Equal(t, "dev", NewBuildInfo("", "", "").Version)
}

func TestHealthHandler_LiveBuildMetrics(t *testing.T) {
	engine := healthRouter(NewHealthHandler(ports.NewHealthRegistry(), NewBuildInfo("", "abc", "now")))

	w := get(t, engine, "/-/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = get(t, engine, "/-/build")
	require.Equal(t, http.StatusOK, w.Code)

	var bi BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bi))
	assert.Equal(t, "dev", bi.Version)
	assert.Equal(t, "abc", bi.Commit)

	w = get(t, engine, "/-/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "quoteboard_quotes_added_total")
}

func TestHealthHandler_ReadyWithoutChecks(t *testing.T) {
	w := get(t, healthRouter(NewHealthHandler(ports.NewHealthRegistry(), BuildInfo{})), "/-/ready")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeReadiness(t, w).Status)
}

func TestHealthHandler_ReadyFollowsSQLStore(t *testing.T) {
	ctx := context.Background()

	store, err := sqlstore.Open(ctx, sqlstore.SQLite, "file:"+filepath.Join(t.TempDir(), "board.db"))
	require.NoError(t, err)

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(store))

	engine := healthRouter(NewHealthHandler(registry, BuildInfo{}))

	w := get(t, engine, "/-/ready")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeReadiness(t, w)
	require.Contains(t, body.Checks, "store-sqlite")
	assert.Equal(t, "healthy", body.Checks["store-sqlite"].Status)
	assert.Empty(t, body.Checks["store-sqlite"].Error)
	assert.NotEmpty(t, body.Checks["store-sqlite"].Latency)

	require.NoError(t, store.Close())

	w = get(t, engine, "/-/ready")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	body = decodeReadiness(t, w)
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, "unhealthy", body.Checks["store-sqlite"].Status)
	assert.Contains(t, body.Checks["store-sqlite"].Error, "database is closed")
}

func TestHealthHandler_ReadyTimesOutHungStore(t *testing.T) {
	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(blockingCheck{}))

	engine := healthRouter(NewHealthHandler(registry, BuildInfo{}).WithReadyTimeout(20 * time.Millisecond))

	start := time.Now()
	w := get(t, engine, "/-/ready")

	assert.Less(t, time.Since(start), time.Second)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, context.DeadlineExceeded.Error(), decodeReadiness(t, w).Checks["store-postgres"].Error)
}

func TestHealthHandler_ReadyPassesDeadline(t *testing.T) {
	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().
		CheckAll(mock.MatchedBy(func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()
			return ok && time.Until(deadline) <= DefaultReadyTimeout
		})).
		Return(&ports.HealthResult{
			Status: ports.HealthStatusUnhealthy,
			Checks: map[string]*ports.CheckResult{
				"store-postgres": {Status: ports.HealthStatusUnhealthy, Message: "connection refused"},
			},
		})

	w := get(t, healthRouter(NewHealthHandler(registry, BuildInfo{})), "/-/ready")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "connection refused", decodeReadiness(t, w).Checks["store-postgres"].Error)
}

func TestHealthHandler_WithReadyTimeoutIgnoresNonPositive(t *testing.T) {
	h := NewHealthHandler(ports.NewHealthRegistry(), BuildInfo{}).WithReadyTimeout(0)

	assert.Equal(t, DefaultReadyTimeout, h.readyTimeout)
}
