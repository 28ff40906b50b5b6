// Package main is the entry point for the landing page server.
package main

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/GoliathBritton/flyfox-ai-platform/domain/health"
	"github.com/GoliathBritton/flyfox-ai-platform/domain/landing"
	"github.com/GoliathBritton/flyfox-ai-platform/domain/tracing"
	"github.com/GoliathBritton/flyfox-ai-platform/internal/config"
	"github.com/GoliathBritton/flyfox-ai-platform/internal/server"
	"github.com/GoliathBritton/flyfox-ai-platform/pkg/logger"
)

func main() {
	// Load .env files if present (for local development); .env.local wins.
	config.LoadDotEnv(".")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,
		tracing.Module,

		// Domain modules
		landing.Module,
		health.Module,
	).Run()
}
