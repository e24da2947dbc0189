package betchecker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/betchecker/internal/domain/overunder"
	"github.com/riskibarqy/betchecker/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultBaseURL   = "http://localhost:8000"
	overUnderPath    = "/search/over-under"
	jsonContentType  = "application/json"
	maxResponseBytes = 1 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	// Timeout bounds the whole call when > 0. Zero leaves HTTPClient's own timeout.
	Timeout time.Duration
	Logger  *logging.Logger
}

// Client queries the BetChecker over/under endpoint. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("betchecker")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.Timeout > 0 {
		clone := *httpClient
		clone.Timeout = cfg.Timeout
		httpClient = &clone
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchOverUnder validates query, issues exactly one GET and classifies the
// outcome. Every returned error is an *overunder.Error.
func (c *Client) FetchOverUnder(ctx context.Context, query overunder.Query) (overunder.Result, error) {
	ctx, span := startSpan(ctx, "betchecker.Client.FetchOverUnder")
	defer span.End()

	if err := query.Validate(); err != nil {
		endSpanWithError(span, err)
		return overunder.Result{}, err
	}

	fullURL := c.buildURL(query)
	span.SetAttributes(
		attribute.String("betchecker.stat", query.Stat.String()),
		attribute.Float64("betchecker.threshold", query.Threshold),
	)
	c.logger.DebugContext(ctx, "betchecker request", "url", fullURL, "base_url", c.baseURL)

	var result overunder.Result
	if err := c.doJSON(ctx, fullURL, &result); err != nil {
		endSpanWithError(span, err)
		return overunder.Result{}, err
	}

	span.SetAttributes(
		attribute.Int("betchecker.over", result.Over),
		attribute.Int("betchecker.under", result.Under),
	)
	return result, nil
}

func (c *Client) doJSON(ctx context.Context, fullURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return overunder.NewNetworkError(crerr.Wrap(err, "build request"))
	}
	req.Header.Set("Accept", jsonContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "betchecker request failed", "url", fullURL, "error", err)
		return overunder.NewNetworkError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	contentType := resp.Header.Get("Content-Type")
	if !isJSONContentType(contentType) {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		c.logger.WarnContext(ctx, "betchecker non-JSON response",
			"url", fullURL,
			"status_code", resp.StatusCode,
			"content_type", contentType,
			"body", abbreviateBody(preview),
		)
		return overunder.NewDecodeError(
			resp.StatusCode,
			fmt.Sprintf("Expected JSON but received %s. Current API URL: %s", describeContentType(contentType), fullURL),
			nil,
		)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return overunder.NewNetworkError(crerr.Wrap(err, "read response body"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body errorBody
		if err := sonic.Unmarshal(raw, &body); err != nil {
			if !sonic.Valid(raw) {
				return c.invalidPayload(ctx, resp.StatusCode, raw, err)
			}
			// Valid JSON that is not an object carries no detail.
			body = errorBody{}
		}
		c.logger.DebugContext(ctx, "betchecker error response", "status_code", resp.StatusCode, "body", abbreviateBody(raw))
		return overunder.NewHTTPError(resp.StatusCode, body.message())
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return c.invalidPayload(ctx, resp.StatusCode, raw, err)
	}

	return nil
}

func (c *Client) invalidPayload(ctx context.Context, statusCode int, raw []byte, cause error) error {
	c.logger.WarnContext(ctx, "betchecker invalid JSON payload",
		"status_code", statusCode,
		"body", abbreviateBody(raw),
		"error", cause,
	)
	return overunder.NewDecodeError(
		statusCode,
		fmt.Sprintf("Invalid response from API. Make sure the API base URL points at the BetChecker backend (currently: %s)", c.baseURL),
		crerr.Wrap(cause, "decode response payload"),
	)
}

func isJSONContentType(value string) bool {
	return strings.Contains(strings.ToLower(value), jsonContentType)
}

func describeContentType(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown content type"
	}
	return value
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
