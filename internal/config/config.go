package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/betchecker/internal/platform/logging"
)

const (
	// DevAPIBaseURL is where the BetChecker backend listens during local development.
	DevAPIBaseURL = "http://localhost:8000"
	// PlaceholderAPIBaseURL marks a non-dev build with no backend URL configured.
	PlaceholderAPIBaseURL = "[Your production URL]"

	APIBaseURLEnv = "BETCHECKER_API_BASE_URL"
)

// Config stores runtime configuration for the client.
type Config struct {
	AppEnv               string
	ServiceName          string
	ServiceVersion       string
	APIBaseURL           string
	APIBaseURLConfigured bool
	HTTPTimeout          time.Duration
	TraceStdoutEnabled   bool
	LogLevel             logging.Level
	LogFormat            string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	baseURL, configured := ResolveAPIBaseURL(appEnv, getEnv(APIBaseURLEnv, ""))

	// Zero means no client-side timeout; the transport decides.
	httpTimeout, err := time.ParseDuration(getEnv("BETCHECKER_HTTP_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETCHECKER_HTTP_TIMEOUT: %w", err)
	}
	if httpTimeout < 0 {
		return Config{}, fmt.Errorf("BETCHECKER_HTTP_TIMEOUT must be >= 0")
	}

	traceStdoutEnabled, err := strconv.ParseBool(getEnv("TRACE_STDOUT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TRACE_STDOUT_ENABLED: %w", err)
	}

	logFormat, err := parseLogFormat(getEnv("LOG_FORMAT", logging.FormatConsole))
	if err != nil {
		return Config{}, err
	}

	return Config{
		AppEnv:               appEnv,
		ServiceName:          strings.TrimSpace(getEnv("SERVICE_NAME", "betchecker")),
		ServiceVersion:       strings.TrimSpace(getEnv("SERVICE_VERSION", "local")),
		APIBaseURL:           baseURL,
		APIBaseURLConfigured: configured,
		HTTPTimeout:          httpTimeout,
		TraceStdoutEnabled:   traceStdoutEnabled,
		LogLevel:             parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat:            logFormat,
	}, nil
}

// ResolveAPIBaseURL picks the backend base URL for appEnv. Dev always talks to
// the local backend; other environments use prodURL or fall back to the
// placeholder, reporting configured=false.
func ResolveAPIBaseURL(appEnv, prodURL string) (baseURL string, configured bool) {
	if appEnv == EnvDev {
		return DevAPIBaseURL, true
	}

	prodURL = strings.TrimRight(strings.TrimSpace(prodURL), "/")
	if prodURL == "" {
		return PlaceholderAPIBaseURL, false
	}
	return prodURL, true
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLogFormat(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case logging.FormatConsole, logging.FormatJSON:
		return value, nil
	default:
		return "", fmt.Errorf("invalid LOG_FORMAT %q: valid values are %s, %s", v, logging.FormatConsole, logging.FormatJSON)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
