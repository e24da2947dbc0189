package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/riskibarqy/betchecker/internal/config"
	"github.com/riskibarqy/betchecker/internal/platform/logging"
	"go.opentelemetry.io/otel"
)

func TestInitTracing_Disabled(t *testing.T) {
	cfg := config.Config{
		TraceStdoutEnabled: false,
		ServiceName:        "betchecker",
		ServiceVersion:     "dev",
		AppEnv:             config.EnvDev,
	}

	var buf bytes.Buffer
	shutdown, err := InitTracing(cfg, &buf, logging.NewNop())
	if err != nil {
		t.Fatalf("init tracing: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown tracing: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output when disabled, got %q", buf.String())
	}
}

func TestInitTracing_ExportsSpans(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	cfg := config.Config{
		TraceStdoutEnabled: true,
		ServiceName:        "betchecker",
		ServiceVersion:     "test",
		AppEnv:             config.EnvDev,
	}

	var buf bytes.Buffer
	shutdown, err := InitTracing(cfg, &buf, logging.NewNop())
	if err != nil {
		t.Fatalf("init tracing: %v", err)
	}

	_, span := otel.Tracer("test").Start(context.Background(), "cli.over-under")
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown tracing: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "cli.over-under") {
		t.Fatalf("expected span name in output, got %q", out)
	}
	if !strings.Contains(out, "betchecker") {
		t.Fatalf("expected service name in output, got %q", out)
	}
}
