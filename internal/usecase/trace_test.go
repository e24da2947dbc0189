package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/betchecker/internal/domain/overunder"
	"go.opentelemetry.io/otel/trace"
)

func TestStartSearchSpan_UntracedCallerKeepsContext(t *testing.T) {
	ctx := context.Background()
	gotCtx, span := startSearchSpan(ctx, overunder.ByPlayerName("Scott Pendlebury", overunder.StatDisposals, 23.5))

	if gotCtx != ctx {
		t.Fatalf("expected context to be returned unchanged")
	}
	if span.SpanContext().IsValid() || span.IsRecording() {
		t.Fatalf("expected a no-op span for an untraced caller")
	}
	if trace.SpanFromContext(gotCtx) != span {
		t.Fatalf("expected the span already carried by ctx")
	}

	endSearchSpan(span, OverUnderReport{}, overunder.NewHTTPError(404, "player not found"))
}
