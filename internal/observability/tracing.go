package observability

import (
	"context"
	"io"
	"os"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/betchecker/internal/config"
	"github.com/riskibarqy/betchecker/internal/platform/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InitTracing installs a global tracer provider that prints finished spans to w.
// The returned shutdown flushes pending spans and must be called before exit.
func InitTracing(cfg config.Config, w io.Writer, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.TraceStdoutEnabled {
		logger.Debug("tracing disabled", "reason", "TRACE_STDOUT_ENABLED=false")
		return func(context.Context) error { return nil }, nil
	}

	if w == nil {
		w = os.Stderr
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, crerr.Wrap(err, "create stdout trace exporter")
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
		attribute.String("deployment.environment", cfg.AppEnv),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	logger.Debug("tracing enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)

	return provider.Shutdown, nil
}
