package landing

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the page, its stylesheet and the branding API
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Index)
	e.HEAD("/", h.Index)
	e.StaticFS("/static", StaticFiles())

	e.GET("/api/branding", h.Branding)
}
