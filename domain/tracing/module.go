package tracing

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/GoliathBritton/flyfox-ai-platform/internal/config"
	"github.com/GoliathBritton/flyfox-ai-platform/internal/version"
	"github.com/GoliathBritton/flyfox-ai-platform/pkg/logger"
)

// Module exports site spans over OTLP/HTTP when OTEL_EXPORTER_OTLP_ENDPOINT
// is set. Without it every span is dropped by a no-op provider.
var Module = fx.Module("tracing",
	fx.Provide(NewTracerProvider),
	fx.Invoke(RegisterTracingLifecycle),
	fx.Invoke(RegisterEchoMiddleware),
)

type tracerProviderResult struct {
	fx.Out

	Exporting *sdktrace.TracerProvider `name:"siteTracerProvider" optional:"true"`
}

type tracerProviderParam struct {
	fx.In

	Exporting *sdktrace.TracerProvider `name:"siteTracerProvider" optional:"true"`
}

// NewTracerProvider sets the global provider used by pkg/tracing.
func NewTracerProvider(cfg *config.Config, log *slog.Logger) (tracerProviderResult, error) {
	log = log.With(logger.Scope("tracing"))

	if !cfg.Otel.Enabled() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		log.Info("span export off")
		return tracerProviderResult{}, nil
	}

	tp, err := newExportingProvider(context.Background(), cfg, log)
	if err != nil {
		return tracerProviderResult{}, err
	}
	otel.SetTracerProvider(tp)

	log.Info("exporting spans",
		slog.String("endpoint", cfg.Otel.ExporterEndpoint),
		slog.String("service", cfg.Otel.ServiceName),
		slog.Float64("sampling_rate", cfg.Otel.SamplingRate),
	)
	return tracerProviderResult{Exporting: tp}, nil
}

func newExportingProvider(ctx context.Context, cfg *config.Config, log *slog.Logger) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Otel.ExporterEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(siteResource(ctx, cfg, log)),
		sdktrace.WithSampler(sampler(cfg.Otel.SamplingRate)),
	), nil
}

// siteResource names the service, its build and environment. OTEL_RESOURCE_ATTRIBUTES
// and process details are merged in when they can be read.
func siteResource(ctx context.Context, cfg *config.Config, log *slog.Logger) *resource.Resource {
	attrs := resource.WithAttributes(
		semconv.ServiceName(cfg.Otel.ServiceName),
		semconv.ServiceVersion(version.Version),
		semconv.DeploymentEnvironment(cfg.Environment),
	)

	res, err := resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		attrs,
		resource.WithFromEnv(),
		resource.WithProcess(),
	)
	if err != nil {
		log.Warn("partial trace resource", logger.Error(err))
	}
	if res == nil {
		return resource.Empty()
	}
	return res
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1:
		return sdktrace.AlwaysSample()
	case rate <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// RegisterTracingLifecycle flushes buffered spans when the app stops.
func RegisterTracingLifecycle(lc fx.Lifecycle, p tracerProviderParam, log *slog.Logger) {
	if p.Exporting == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("flushing spans", logger.Scope("tracing"))
			return p.Exporting.Shutdown(ctx)
		},
	})
}

// skipTracing keeps probes and scrapes out of the traces.
func skipTracing(c echo.Context) bool {
	switch c.Request().URL.Path {
	case "/health", "/healthz", "/ready", "/metrics":
		return true
	}
	return false
}

// RegisterEchoMiddleware opens a server span per request while exporting.
func RegisterEchoMiddleware(e *echo.Echo, cfg *config.Config) {
	if !cfg.Otel.Enabled() {
		return
	}
	e.Use(otelecho.Middleware(cfg.Otel.ServiceName, otelecho.WithSkipper(skipTracing)))
}
