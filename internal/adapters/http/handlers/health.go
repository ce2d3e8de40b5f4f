// Package handlers provides the HTTP handlers of the board.
package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/quoteboard/internal/ports"
)

// DefaultReadyTimeout bounds one readiness probe.
const DefaultReadyTimeout = 2 * time.Second

// BuildInfo describes the running binary. Version, Commit and BuildTime are
// set through -ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills in the Go version. A binary built without -ldflags
// reports version "dev".
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	if version == "" {
		version = "dev"
	}

	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves the /-/ probes. Readiness is the board's storage:
// the SQL store registers itself, the in-memory store has nothing to check.
type HealthHandler struct {
	registry     ports.HealthRegistry
	build        BuildInfo
	readyTimeout time.Duration
}

func NewHealthHandler(registry ports.HealthRegistry, build BuildInfo) *HealthHandler {
	return &HealthHandler{
		registry:     registry,
		build:        build,
		readyTimeout: DefaultReadyTimeout,
	}
}

// WithReadyTimeout changes how long readiness waits for its checks. A check
// still running at the deadline is reported down.
func (h *HealthHandler) WithReadyTimeout(d time.Duration) *HealthHandler {
	if d > 0 {
		h.readyTimeout = d
	}

	return h
}

type liveness struct {
	Status string `json:"status"`
}

type readiness struct {
	Status string               `json:"status"`
	Checks map[string]checkView `json:"checks,omitempty"`
}

type checkView struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency"`
}

// Live handles GET /-/live. The process answering is enough.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, liveness{Status: "ok"})
}

// Ready handles GET /-/ready: 200 while storage answers, 503 with the failing
// check's error otherwise.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.readyTimeout)
	defer cancel()

	result := h.registry.CheckAll(ctx)

	body := readiness{
		Status: string(result.Status),
		Checks: make(map[string]checkView, len(result.Checks)),
	}

	for name, check := range result.Checks {
		body.Checks[name] = checkView{
			Status:  string(check.Status),
			Error:   check.Message,
			Latency: check.Duration.Round(time.Microsecond).String(),
		}
	}

	status := http.StatusOK
	if result.Status != ports.HealthStatusHealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, body)
}

// Build handles GET /-/build.
func (h *HealthHandler) Build(c *gin.Context) {
	c.JSON(http.StatusOK, h.build)
}

// RegisterRoutes mounts live, ready, build and the Prometheus registry under /-.
func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/-")
	group.GET("/live", h.Live)
	group.GET("/ready", h.Ready)
	group.GET("/build", h.Build)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
