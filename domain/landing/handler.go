package landing

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"

	"github.com/GoliathBritton/flyfox-ai-platform/pkg/branding"
	"github.com/GoliathBritton/flyfox-ai-platform/pkg/logger"
	"github.com/GoliathBritton/flyfox-ai-platform/pkg/tracing"
)

var pageViews = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "landing_page_views_total",
		Help: "Landing page responses by result",
	},
	[]string{"result"},
)

// Handler serves the cached landing page.
type Handler struct {
	page *Page
	log  *slog.Logger
}

func NewHandler(page *Page, log *slog.Logger) *Handler {
	return &Handler{page: page, log: log.With(logger.Scope("landing"))}
}

// Index handles GET and HEAD /
func (h *Handler) Index(c echo.Context) error {
	req := c.Request()
	_, span := tracing.Start(req.Context(), "landing.serve",
		attribute.String("http.method", req.Method),
	)
	defer span.End()

	header := c.Response().Header()
	header.Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	header.Set("ETag", h.page.ETag())
	header.Set("Cache-Control", "public, max-age=300")

	if etagMatches(req.Header.Get("If-None-Match"), h.page.ETag()) {
		pageViews.WithLabelValues("not_modified").Inc()
		span.SetAttributes(attribute.Bool("landing.not_modified", true))
		h.log.Debug("landing page not modified",
			slog.String("etag", h.page.ETag()),
			slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		)
		return c.NoContent(http.StatusNotModified)
	}

	pageViews.WithLabelValues("ok").Inc()
	header.Set(echo.HeaderContentLength, strconv.Itoa(h.page.Size()))
	if req.Method == http.MethodHead {
		return c.NoContent(http.StatusOK)
	}

	res := c.Response()
	res.WriteHeader(http.StatusOK)
	if _, err := h.page.WriteTo(res); err != nil {
		h.log.Warn("write landing page", logger.Error(err))
	}
	return nil
}

// BrandingResponse is the body of GET /api/branding
type BrandingResponse struct {
	Branding branding.Info    `json:"branding"`
	Theme    branding.Palette `json:"theme"`
}

// Branding handles GET /api/branding
func (h *Handler) Branding(c echo.Context) error {
	brand := h.page.Brand()
	return c.JSON(http.StatusOK, BrandingResponse{
		Branding: brand.Info,
		Theme:    brand.Palette,
	})
}

// etagMatches implements the If-None-Match comparison for a single strong tag.
func etagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
