package usecase

import (
	"context"

	"github.com/riskibarqy/betchecker/internal/domain/overunder"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("betchecker/internal/usecase")

// startSearchSpan opens a span for one search when the caller is traced.
// Untraced callers get the span already in ctx, which is a no-op.
func startSearchSpan(ctx context.Context, query overunder.Query) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return usecaseTracer.Start(ctx, "usecase.OverUnderService.Search", trace.WithAttributes(
		attribute.String("betchecker.player", query.Subject()),
		attribute.String("betchecker.stat", query.Stat.String()),
		attribute.Float64("betchecker.threshold", query.Threshold),
	))
}

func endSearchSpan(span trace.Span, report OverUnderReport, err error) {
	defer span.End()
	if !span.IsRecording() {
		return
	}
	if err != nil {
		span.SetAttributes(attribute.String("betchecker.error_kind", string(overunder.KindOf(err))))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(
		attribute.Int("betchecker.total", report.Total),
		attribute.Float64("betchecker.over_share", report.OverShare),
	)
}
