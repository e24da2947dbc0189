package cli

import (
	"github.com/spf13/cobra"
)

func newConfigCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			NewOutput(s.flags.output, s.stdout, s.stderr).Print(ConfigView{
				AppEnv:            s.cfg.AppEnv,
				APIBaseURL:        s.cfg.APIBaseURL,
				BaseURLConfigured: s.cfg.APIBaseURLConfigured,
				HTTPTimeout:       s.cfg.HTTPTimeout.String(),
				LogLevel:          s.cfg.LogLevel.String(),
				TraceEnabled:      s.cfg.TraceStdoutEnabled,
			})
			return nil
		},
	}
}
