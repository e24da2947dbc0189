package app

import (
	"net/http"

	"github.com/riskibarqy/betchecker/external/betchecker"
	"github.com/riskibarqy/betchecker/internal/config"
	"github.com/riskibarqy/betchecker/internal/platform/logging"
	"github.com/riskibarqy/betchecker/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPClient returns the instrumented transport used for backend calls.
// The request timeout is applied by the betchecker client.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		),
	}
}

func NewOverUnderClient(cfg config.Config, logger *logging.Logger) *betchecker.Client {
	return betchecker.NewClient(betchecker.ClientConfig{
		HTTPClient: NewHTTPClient(),
		BaseURL:    cfg.APIBaseURL,
		Timeout:    cfg.HTTPTimeout,
		Logger:     logger,
	})
}

func NewOverUnderService(cfg config.Config, logger *logging.Logger) *usecase.OverUnderService {
	return usecase.NewOverUnderService(NewOverUnderClient(cfg, logger), logger)
}
