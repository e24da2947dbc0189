package betchecker

import (
	"context"

	"github.com/riskibarqy/betchecker/internal/domain/overunder"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var clientTracer = otel.Tracer("betchecker/external/betchecker")
var noopSpan = trace.SpanFromContext(context.Background())

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// Library calls without a traced caller should not create root spans.
		return ctx, noopSpan
	}
	return clientTracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))
}

func endSpanWithError(span trace.Span, err error) {
	if err == nil || !span.IsRecording() {
		return
	}
	if failure, ok := overunder.AsError(err); ok {
		span.SetAttributes(attribute.String("betchecker.error_kind", string(failure.Kind)))
		if failure.HasStatusCode() {
			span.SetAttributes(attribute.Int("http.response.status_code", failure.StatusCode))
		}
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
