// Package tracing wraps the global OTel tracer for the site's own spans.
//
// With no TracerProvider installed the global no-op provider is used and
// every call is inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "flyfox-site"

// Start opens a span under the one in ctx. Callers must End it.
//
//	ctx, span := tracing.Start(ctx, "landing.render",
//	    attribute.String("brand.name", info.Name),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}
