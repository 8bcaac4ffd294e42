// Package telemetry bootstraps the optional OTLP trace pipeline.
package telemetry

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

func enabled() bool {
	switch strings.ToLower(os.Getenv("ENABLE_TELEMETRY")) {
	case "true", "1":
		return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
	}
	return false
}

// Init wires the OTLP HTTP exporter as the global trace provider.
// Tracing is optional: misconfiguration logs a warning and the service
// runs untraced. The returned shutdown flushes pending spans.
func Init() func() {
	noop := func() {}

	if !enabled() {
		log.Info().Msg("Tracing disabled")
		return noop
	}

	ctx := context.Background()

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create trace exporter, continuing untraced")
		return noop
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(os.Getenv("OTEL_SERVICE_NAME")),
			semconv.ServiceVersion(os.Getenv("OTEL_SERVICE_VERSION")),
		),
	)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to describe trace resource, continuing untraced")
		return noop
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	log.Info().Msg("Tracing enabled")

	return func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Trace provider shutdown failed")
		}
	}
}
