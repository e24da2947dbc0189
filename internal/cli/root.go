package cli

import (
	"context"
	"io"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/betchecker/internal/app"
	"github.com/riskibarqy/betchecker/internal/config"
	"github.com/riskibarqy/betchecker/internal/domain/overunder"
	"github.com/riskibarqy/betchecker/internal/observability"
	"github.com/riskibarqy/betchecker/internal/platform/logging"
	"github.com/riskibarqy/betchecker/internal/usecase"
	"github.com/spf13/cobra"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	shutdownGrace = 5 * time.Second
)

type globalFlags struct {
	baseURL string
	timeout time.Duration
	output  string
	verbose bool
	trace   bool
}

// session holds what one CLI invocation builds in PersistentPreRunE.
type session struct {
	stdout io.Writer
	stderr io.Writer
	flags  globalFlags

	cfg      config.Config
	logger   *logging.Logger
	service  *usecase.OverUnderService
	shutdown func(context.Context) error
}

func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "betchecker",
		Short: "Look up AFL player over/under counts from the BetChecker API",
		Long: `betchecker queries the BetChecker backend for how many games a player's
statistic finished over or under a threshold across their full career.

The backend URL is http://localhost:8000 when APP_ENV=dev, otherwise
BETCHECKER_API_BASE_URL. Use --base-url to point a single run elsewhere.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetOut(s.stdout)
	rootCmd.SetErr(s.stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return crerr.Mark(err, errUsage)
	})

	rootCmd.PersistentFlags().StringVar(&s.flags.baseURL, "base-url", "", "Backend base URL, overrides the environment")
	rootCmd.PersistentFlags().DurationVar(&s.flags.timeout, "timeout", 0, "Request timeout, 0 for none (env: BETCHECKER_HTTP_TIMEOUT)")
	rootCmd.PersistentFlags().StringVarP(&s.flags.output, "output", "o", "text", "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&s.flags.verbose, "verbose", "v", false, "Log requests at debug level")
	rootCmd.PersistentFlags().BoolVar(&s.flags.trace, "trace", false, "Print trace spans to stderr (env: TRACE_STDOUT_ENABLED)")

	rootCmd.AddCommand(newOverUnderCmd(s))
	rootCmd.AddCommand(newConfigCmd(s))

	return rootCmd
}

// Run executes the CLI and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	s := &session{stdout: stdout, stderr: stderr}
	rootCmd := newRootCmd(s)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	s.close()

	if err != nil {
		NewOutput(s.flags.output, stdout, stderr).PrintError(err)
		return exitCode(err)
	}
	return exitOK
}

func (s *session) open(ctx context.Context) error {
	if err := validateOutputFormat(s.flags.output); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return crerr.Wrap(err, "load config")
	}
	if s.flags.baseURL != "" {
		cfg.APIBaseURL, cfg.APIBaseURLConfigured = config.ResolveAPIBaseURL(config.EnvProd, s.flags.baseURL)
	}
	if s.flags.timeout < 0 {
		return crerr.Mark(crerr.Newf("--timeout must be >= 0, got %s", s.flags.timeout), errUsage)
	}
	if s.flags.timeout > 0 {
		cfg.HTTPTimeout = s.flags.timeout
	}
	if s.flags.verbose {
		cfg.LogLevel = logging.LevelDebug
	}
	if s.flags.trace {
		cfg.TraceStdoutEnabled = true
	}

	logger := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: s.stderr,
	}).With("app_env", cfg.AppEnv)
	logging.SetDefault(logger)

	shutdown, err := observability.InitTracing(cfg, s.stderr, logger)
	if err != nil {
		return crerr.Wrap(err, "init tracing")
	}

	if !cfg.APIBaseURLConfigured {
		logger.WarnContext(ctx, "backend base url is not configured",
			"env", config.APIBaseURLEnv,
			"base_url", cfg.APIBaseURL,
		)
	}

	s.cfg = cfg
	s.logger = logger
	s.shutdown = shutdown
	s.service = app.NewOverUnderService(cfg, logger)
	return nil
}

func (s *session) close() {
	if s.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := s.shutdown(ctx); err != nil && s.logger != nil {
			s.logger.Warn("tracing shutdown failed", "error", err)
		}
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}

func exitCode(err error) int {
	if overunder.KindOf(err) == overunder.KindValidation {
		return exitUsage
	}
	if crerr.Is(err, errUsage) {
		return exitUsage
	}
	return exitFailure
}
