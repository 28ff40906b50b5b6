package health

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/GoliathBritton/flyfox-ai-platform/domain/landing"
	"github.com/GoliathBritton/flyfox-ai-platform/internal/config"
	"github.com/GoliathBritton/flyfox-ai-platform/internal/version"
	"github.com/GoliathBritton/flyfox-ai-platform/pkg/apperror"
	"github.com/GoliathBritton/flyfox-ai-platform/pkg/logger"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Handler handles health check requests
type Handler struct {
	page    *landing.Page
	cfg     *config.Config
	log     *slog.Logger
	startAt time.Time
}

// NewHandler creates a new health handler
func NewHandler(page *landing.Page, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		page:    page,
		cfg:     cfg,
		log:     log.With(logger.Scope("health")),
		startAt: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) checkPage() Check {
	if h.page == nil || h.page.Size() == 0 {
		return Check{Status: statusUnhealthy, Message: "landing page not rendered"}
	}
	return Check{Status: statusHealthy}
}

// Health returns the overall service health
func (h *Handler) Health(c echo.Context) error {
	page := h.checkPage()

	response := HealthResponse{
		Status:    page.Status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks: map[string]Check{
			"page": page,
		},
	}

	statusCode := http.StatusOK
	if response.Status == statusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}
	return c.JSON(statusCode, response)
}

// Healthz is the liveness probe.
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready reports whether the page is cached and can be served.
func (h *Handler) Ready(c echo.Context) error {
	if check := h.checkPage(); check.Status != statusHealthy {
		return apperror.ErrServiceUnavailable.WithMessage(check.Message)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Debug returns runtime and host memory stats. Hidden in production.
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.IsProduction() {
		return apperror.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	result := map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"version":     version.Info(),
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"num_cpu":     runtime.NumCPU(),
		"memory": map[string]any{
			"alloc_mb":       ms.Alloc / 1024 / 1024,
			"total_alloc_mb": ms.TotalAlloc / 1024 / 1024,
			"sys_mb":         ms.Sys / 1024 / 1024,
			"num_gc":         ms.NumGC,
		},
		"page": map[string]any{
			"brand": h.page.Brand().Info.Name,
			"bytes": h.page.Size(),
			"etag":  h.page.ETag(),
		},
	}

	// Host stats are best effort; containers without /proc still get the rest.
	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		h.log.Warn("host memory unavailable", logger.Error(err))
		result["host"] = map[string]any{"error": err.Error()}
	} else {
		result["host"] = map[string]any{
			"total_mb":     vm.Total / 1024 / 1024,
			"available_mb": vm.Available / 1024 / 1024,
			"used_percent": vm.UsedPercent,
		}
	}

	return c.JSON(http.StatusOK, result)
}
