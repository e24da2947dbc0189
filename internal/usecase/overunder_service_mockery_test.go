package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/betchecker/internal/domain/overunder"
	usecasemock "github.com/riskibarqy/betchecker/internal/mocks/usecase"
	"github.com/riskibarqy/betchecker/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOverUnderService_Search_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewOverUnderProvider(t)
	service := NewOverUnderService(provider, logging.NewNop())

	query := overunder.ByPlayerName("Scott Pendlebury", overunder.StatDisposals, 19.5).WithStrictOver(true)
	provider.
		On("FetchOverUnder", mock.Anything, query).
		Return(overunder.Result{Over: 300, Under: 100}, nil).
		Once()

	report, err := service.Search(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, overunder.Result{Over: 300, Under: 100}, report.Result)
	assert.Equal(t, query, report.Query)
	assert.Equal(t, 400, report.Total)
	assert.InDelta(t, 0.75, report.OverShare, 1e-9)
	assert.InDelta(t, 0.25, report.UnderShare, 1e-9)
	assert.InDelta(t, 1.0, report.OverShare+report.UnderShare, 1e-9)
}

func TestOverUnderService_Search_NoGamesUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewOverUnderProvider(t)
	service := NewOverUnderService(provider, logging.NewNop())

	query := overunder.ByPlayerID(99, overunder.StatGoals, 0.5)
	provider.
		On("FetchOverUnder", mock.Anything, query).
		Return(overunder.Result{}, nil).
		Once()

	report, err := service.Search(context.Background(), query)
	require.NoError(t, err)
	assert.Zero(t, report.Total)
	assert.Zero(t, report.OverShare)
	assert.Zero(t, report.UnderShare)
}

func TestOverUnderService_Search_PreservesFailureUsingMockery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		failure  *overunder.Error
		sentinel error
	}{
		{name: "http", failure: overunder.NewHTTPError(404, "player not found"), sentinel: overunder.ErrHTTP},
		{name: "network", failure: overunder.NewNetworkError(context.Canceled), sentinel: overunder.ErrNetwork},
		{name: "decode", failure: overunder.NewDecodeError(200, "Expected JSON but received text/html", nil), sentinel: overunder.ErrDecode},
		{name: "validation", failure: overunder.NewValidationError(overunder.MsgExactlyOneIdentifier), sentinel: overunder.ErrValidation},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := usecasemock.NewOverUnderProvider(t)
			service := NewOverUnderService(provider, logging.NewNop())

			query := overunder.ByPlayerName("Nobody", overunder.StatGoals, 1.5)
			provider.
				On("FetchOverUnder", mock.Anything, query).
				Return(overunder.Result{}, tc.failure).
				Once()

			_, err := service.Search(context.Background(), query)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.sentinel), "expected %v in chain, got %v", tc.sentinel, err)

			got, ok := overunder.AsError(err)
			require.True(t, ok)
			assert.Same(t, tc.failure, got)
			assert.Contains(t, err.Error(), "Nobody")
		})
	}
}
