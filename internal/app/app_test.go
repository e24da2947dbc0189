package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/betchecker/internal/config"
	"github.com/riskibarqy/betchecker/internal/domain/overunder"
	"github.com/riskibarqy/betchecker/internal/platform/logging"
)

func TestNewOverUnderService_UsesConfiguredBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("player_id") != "12345" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"over": 3, "under": 1}`))
	}))
	defer srv.Close()

	cfg := config.Config{
		AppEnv:      config.EnvProd,
		APIBaseURL:  srv.URL,
		HTTPTimeout: 5 * time.Second,
	}

	report, err := NewOverUnderService(cfg, logging.NewNop()).Search(context.Background(), overunder.ByPlayerID(12345, overunder.StatGoals, 1.5))
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if report.Result.Over != 3 || report.Result.Under != 1 {
		t.Fatalf("unexpected result: %+v", report.Result)
	}
	if report.Total != 4 {
		t.Fatalf("unexpected total: %d", report.Total)
	}
}

func TestNewOverUnderClient_AppliesConfiguredTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := NewOverUnderClient(config.Config{
		AppEnv:      config.EnvProd,
		APIBaseURL:  srv.URL,
		HTTPTimeout: 50 * time.Millisecond,
	}, logging.NewNop())

	_, err := client.FetchOverUnder(context.Background(), overunder.ByPlayerName("Scott Pendlebury", overunder.StatDisposals, 23.5))
	if !errors.Is(err, overunder.ErrNetwork) {
		t.Fatalf("expected network error from timeout, got %v", err)
	}
}

func TestNewHTTPClient_LeavesTimeoutToClient(t *testing.T) {
	if client := NewHTTPClient(); client.Timeout != 0 {
		t.Fatalf("expected no transport-level timeout, got %s", client.Timeout)
	}
}
