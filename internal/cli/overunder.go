package cli

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/betchecker/internal/domain/overunder"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var cliTracer = otel.Tracer("betchecker/internal/cli")

var errUsage = crerr.New("usage error")

func newOverUnderCmd(s *session) *cobra.Command {
	var (
		playerName string
		playerID   int64
		stat       string
		threshold  float64
		strictOver bool
	)

	cmd := &cobra.Command{
		Use:   "over-under",
		Short: "Count games a player's stat finished over/under a threshold",
		Example: `  betchecker over-under --player-name "Scott Pendlebury" --stat disposals --threshold 23.5
  betchecker over-under --player-id 12345 --stat goals --threshold 1.5 --strict-over
  betchecker over-under --player-name "Nick Daicos" --threshold 30.5 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				return crerr.Mark(crerr.New(`required flag "threshold" not set`), errUsage)
			}
			statType, err := overunder.ParseStatType(stat)
			if err != nil {
				return err
			}
			query := overunder.Query{
				Stat:      statType,
				Threshold: threshold,
			}
			if cmd.Flags().Changed("player-name") {
				query.PlayerName = playerName
			}
			if cmd.Flags().Changed("player-id") {
				id := playerID
				query.PlayerID = &id
			}
			// Unset leaves the server default (inclusive over).
			if cmd.Flags().Changed("strict-over") {
				query = query.WithStrictOver(strictOver)
			}

			ctx, span := cliTracer.Start(cmd.Context(), "cli.over-under")
			defer span.End()
			span.SetAttributes(
				attribute.String("betchecker.base_url", s.cfg.APIBaseURL),
				attribute.String("betchecker.player", query.Subject()),
			)

			report, err := s.service.Search(ctx, query)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return err
			}

			NewOutput(s.flags.output, s.stdout, s.stderr).PrintReport(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerName, "player-name", "", "Player's full name, e.g. \"Scott Pendlebury\"")
	cmd.Flags().Int64Var(&playerID, "player-id", 0, "Player id, instead of --player-name")
	cmd.Flags().StringVar(&stat, "stat", string(overunder.StatDisposals), "Statistic: disposals, goals")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Threshold value, e.g. 23.5 (required)")
	cmd.Flags().BoolVar(&strictOver, "strict-over", false, "true: over is >, under is <=. false: over is >=, under is <. Omit for the server default")

	return cmd
}
