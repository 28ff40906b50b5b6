package landing

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/GoliathBritton/flyfox-ai-platform/pkg/branding"
	"github.com/GoliathBritton/flyfox-ai-platform/pkg/logger"
)

var Module = fx.Module("landing",
	fx.Provide(
		ProvidePage,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)

// ProvidePage renders the page once at start-up.
func ProvidePage(brand branding.Brand, log *slog.Logger) (*Page, error) {
	page, err := NewPage(context.Background(), brand)
	if err != nil {
		return nil, err
	}

	log.With(logger.Scope("landing")).Info("landing page rendered",
		slog.String("brand", brand.Info.Name),
		slog.Int("bytes", page.Size()),
		slog.String("etag", page.ETag()),
	)
	return page, nil
}
