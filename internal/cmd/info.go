package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/charmbracelet/pal/internal/config"
	"github.com/charmbracelet/pal/internal/pal"
)

// Report is a snapshot of every probe.
type Report struct {
	OS            string  `json:"os"`
	PID           int     `json:"pid"`
	Executable    string  `json:"executable"`
	TempDir       string  `json:"temp_dir"`
	WallTime      float64 `json:"wall_time"`
	MonotonicTime float64 `json:"monotonic_time"`
	StdinTTY      bool    `json:"stdin_tty"`
	StdoutTTY     bool    `json:"stdout_tty"`
	StderrTTY     bool    `json:"stderr_tty"`
}

func newInfoCmd(p pal.Platform, cfg config.Config) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the platform probe report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, p, cfg, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func collect(p pal.Platform) Report {
	exe, err := p.ExecutablePath()
	if err != nil {
		slog.Debug("executable path unavailable", "error", err)
	}
	return Report{
		OS:            p.Name(),
		PID:           p.ProcessID(),
		Executable:    exe,
		TempDir:       p.TempDir(),
		WallTime:      p.WallTime(),
		MonotonicTime: p.MonotonicTime(),
		StdinTTY:      p.IsTerminal(os.Stdin.Fd()),
		StdoutTTY:     p.IsTerminal(os.Stdout.Fd()),
		StderrTTY:     p.IsTerminal(os.Stderr.Fd()),
	}
}

func runInfo(cmd *cobra.Command, p pal.Platform, cfg config.Config, asJSON bool) error {
	r := collect(p)
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return nil
	}

	return writeReport(out, r, cfg.UseColor(r.StdoutTTY))
}

func writeReport(w io.Writer, r Report, color bool) error {
	exe := r.Executable
	if exe == "" {
		exe = "(unavailable)"
	}
	rows := [][2]string{
		{"os", r.OS},
		{"pid", strconv.Itoa(r.PID)},
		{"executable", exe},
		{"temp_dir", r.TempDir},
		{"wall_time", strconv.FormatFloat(r.WallTime, 'f', 6, 64)},
		{"monotonic_time", strconv.FormatFloat(r.MonotonicTime, 'f', 6, 64)},
		{"stdin_tty", strconv.FormatBool(r.StdinTTY)},
		{"stdout_tty", strconv.FormatBool(r.StdoutTTY)},
		{"stderr_tty", strconv.FormatBool(r.StderrTTY)},
	}
	th := themeFor(color)
	for _, row := range rows {
		val := row[1]
		if r.Executable == "" && row[0] == "executable" {
			val = th.Muted.Render(val)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", th.Key.Render(row[0]+":"), val); err != nil {
			return err
		}
	}
	return nil
}
