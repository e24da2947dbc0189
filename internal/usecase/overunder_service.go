package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/betchecker/internal/domain/overunder"
	"github.com/riskibarqy/betchecker/internal/platform/logging"
)

type OverUnderProvider interface {
	FetchOverUnder(ctx context.Context, query overunder.Query) (overunder.Result, error)
}

// OverUnderReport is a fetched result plus the shares derived from it.
// Shares are zero when the player has no recorded games.
type OverUnderReport struct {
	Query      overunder.Query
	Result     overunder.Result
	Total      int
	OverShare  float64
	UnderShare float64
}

type OverUnderService struct {
	provider OverUnderProvider
	logger   *logging.Logger
}

func NewOverUnderService(provider OverUnderProvider, logger *logging.Logger) *OverUnderService {
	return &OverUnderService{
		provider: provider,
		logger:   logger.Named("usecase"),
	}
}

// Search runs one lookup. Failures keep their *overunder.Error in the chain.
func (s *OverUnderService) Search(ctx context.Context, query overunder.Query) (report OverUnderReport, err error) {
	ctx, span := startSearchSpan(ctx, query)
	defer func() { endSearchSpan(span, report, err) }()

	result, err := s.provider.FetchOverUnder(ctx, query)
	if err != nil {
		s.logFailure(ctx, query, err)
		return OverUnderReport{}, fmt.Errorf("search over/under for %s: %w", query.Subject(), err)
	}

	return buildOverUnderReport(query, result), nil
}

func (s *OverUnderService) logFailure(ctx context.Context, query overunder.Query, err error) {
	failure, ok := overunder.AsError(err)
	if !ok {
		s.logger.ErrorContext(ctx, "over/under search failed", "player", query.Subject(), "error", err)
		return
	}

	args := []any{
		"player", query.Subject(),
		"stat", query.Stat.String(),
		"kind", string(failure.Kind),
		"error", err,
	}
	if failure.HasStatusCode() {
		args = append(args, "status_code", failure.StatusCode)
	}

	if failure.Kind == overunder.KindValidation {
		s.logger.DebugContext(ctx, "over/under query rejected", args...)
		return
	}
	s.logger.WarnContext(ctx, "over/under search failed", args...)
}

func buildOverUnderReport(query overunder.Query, result overunder.Result) OverUnderReport {
	report := OverUnderReport{
		Query:  query,
		Result: result,
		Total:  result.Total(),
	}
	if report.Total > 0 {
		report.OverShare = float64(result.Over) / float64(report.Total)
		report.UnderShare = float64(result.Under) / float64(report.Total)
	}
	return report
}
