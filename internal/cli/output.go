package cli

import (
	"fmt"
	"io"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/betchecker/internal/domain/overunder"
	"github.com/riskibarqy/betchecker/internal/usecase"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	stdout io.Writer
	stderr io.Writer
}

func NewOutput(format string, stdout, stderr io.Writer) *Output {
	if format != formatJSON {
		format = formatText
	}
	return &Output{format: format, stdout: stdout, stderr: stderr}
}

func validateOutputFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return crerr.Mark(crerr.Newf("invalid output format %q: valid values are %s, %s", format, formatText, formatJSON), errUsage)
	}
}

// ReportView is the JSON shape of an over/under report.
type ReportView struct {
	Player     string  `json:"player"`
	PlayerName string  `json:"player_name,omitempty"`
	PlayerID   *int64  `json:"player_id,omitempty"`
	Stat       string  `json:"stat"`
	Threshold  float64 `json:"threshold"`
	StrictOver *bool   `json:"strict_over,omitempty"`
	Over       int     `json:"over"`
	Under      int     `json:"under"`
	Total      int     `json:"total"`
	OverShare  float64 `json:"over_share"`
	UnderShare float64 `json:"under_share"`
}

// ConfigView is the resolved configuration as printed by `config`.
type ConfigView struct {
	AppEnv            string `json:"app_env"`
	APIBaseURL        string `json:"api_base_url"`
	BaseURLConfigured bool   `json:"base_url_configured"`
	HTTPTimeout       string `json:"http_timeout"`
	LogLevel          string `json:"log_level"`
	TraceEnabled      bool   `json:"trace_enabled"`
}

type errorView struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind       string `json:"kind,omitempty"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
}

func newReportView(report usecase.OverUnderReport) ReportView {
	return ReportView{
		Player:     report.Query.Subject(),
		PlayerName: report.Query.PlayerName,
		PlayerID:   report.Query.PlayerID,
		Stat:       report.Query.Stat.String(),
		Threshold:  report.Query.Threshold,
		StrictOver: report.Query.StrictOver,
		Over:       report.Result.Over,
		Under:      report.Result.Under,
		Total:      report.Total,
		OverShare:  report.OverShare,
		UnderShare: report.UnderShare,
	}
}

func (o *Output) PrintReport(report usecase.OverUnderReport) {
	o.Print(newReportView(report))
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == formatJSON {
		o.printJSON(o.stdout, data)
		return
	}

	switch v := data.(type) {
	case ReportView:
		o.printReport(v)
	case ConfigView:
		o.printConfig(v)
	default:
		o.printJSON(o.stdout, data)
	}
}

// PrintError writes err to stderr. Lookup failures keep their kind and status code.
func (o *Output) PrintError(err error) {
	detail := errorDetail{Message: err.Error()}
	if failure, ok := overunder.AsError(err); ok {
		detail = errorDetail{
			Kind:       string(failure.Kind),
			Message:    failure.Message,
			StatusCode: failure.StatusCode,
		}
	}

	if o.format == formatJSON {
		o.printJSON(o.stderr, errorView{Error: detail})
		return
	}

	switch {
	case detail.Kind == "":
		fmt.Fprintf(o.stderr, "Error: %s\n", detail.Message)
	case detail.StatusCode != 0:
		fmt.Fprintf(o.stderr, "Error (%s, status %d): %s\n", detail.Kind, detail.StatusCode, detail.Message)
	default:
		fmt.Fprintf(o.stderr, "Error (%s): %s\n", detail.Kind, detail.Message)
	}
}

func (o *Output) printJSON(w io.Writer, data any) {
	encoded, err := sonic.ConfigStd.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(o.stderr, "Error: encode output: %s\n", err)
		return
	}
	fmt.Fprintln(w, string(encoded))
}

func (o *Output) printReport(r ReportView) {
	fmt.Fprintf(o.stdout, "Player:    %s\n", r.Player)
	fmt.Fprintf(o.stdout, "Stat:      %s over/under %s (%s)\n", r.Stat, formatNumber(r.Threshold), describeStrictOver(r.StrictOver))
	fmt.Fprintf(o.stdout, "Over:      %d %s (%s)\n", r.Over, pluralGames(r.Over), formatShare(r.OverShare, r.Total))
	fmt.Fprintf(o.stdout, "Under:     %d %s (%s)\n", r.Under, pluralGames(r.Under), formatShare(r.UnderShare, r.Total))
	fmt.Fprintf(o.stdout, "Total:     %d %s\n", r.Total, pluralGames(r.Total))
}

func (o *Output) printConfig(c ConfigView) {
	configured := "yes"
	if !c.BaseURLConfigured {
		configured = "no"
	}
	fmt.Fprintf(o.stdout, "App env:     %s\n", c.AppEnv)
	fmt.Fprintf(o.stdout, "API base:    %s (configured: %s)\n", c.APIBaseURL, configured)
	fmt.Fprintf(o.stdout, "Timeout:     %s\n", c.HTTPTimeout)
	fmt.Fprintf(o.stdout, "Log level:   %s\n", c.LogLevel)
	fmt.Fprintf(o.stdout, "Tracing:     %t\n", c.TraceEnabled)
}

func describeStrictOver(v *bool) string {
	switch {
	case v == nil:
		return "server default"
	case *v:
		return "strict: over >, under <="
	default:
		return "inclusive: over >=, under <"
	}
}

func formatShare(share float64, total int) string {
	if total == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", share*100)
}

func formatNumber(v float64) string {
	out := fmt.Sprintf("%.4f", v)
	out = strings.TrimRight(out, "0")
	return strings.TrimSuffix(out, ".")
}

func pluralGames(n int) string {
	if n == 1 {
		return "game"
	}
	return "games"
}
