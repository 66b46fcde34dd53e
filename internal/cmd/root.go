package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/charmbracelet/pal/internal/config"
	"github.com/charmbracelet/pal/internal/log"
	"github.com/charmbracelet/pal/internal/pal"
	"github.com/charmbracelet/pal/internal/sandbox"
)

var version = "devel"

func newRootCmd(p pal.Platform, cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "pal",
		Short: "Probe the platform primitives of this machine",
		Long: `pal reports what the platform layer sees on this machine: clocks,
temp directory, process and executable information and terminal state.
It can also self-check those primitives and answer OS match queries.`,
		Example: `
# Show the probe report
pal

# Same, as JSON
pal info --json

# Is this binary built for macOS?
pal match macos

# Run the self-checks
pal check --samples 100000
  `,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, p, cfg, false)
		},
	}

	root.AddCommand(
		newInfoCmd(p, cfg),
		newMatchCmd(p),
		newCheckCmd(p, cfg),
	)
	return root
}

// Execute runs the CLI against the native platform.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	closer, err := log.Setup(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("setting up logging: %w", err))
		os.Exit(1)
	}

	p := pal.Native()
	p.EnableTerminalColors()
	slog.Debug("platform ready", "os", p.Name(), "pid", p.ProcessID(), "temp_dir", p.TempDir())

	if err := sandbox.Init(sandboxPaths(p, cfg)); err != nil {
		slog.Warn("running without sandbox", "error", err)
	}

	err = fang.Execute(
		context.Background(),
		newRootCmd(p, cfg),
		fang.WithVersion(version),
	)
	closer.Close()
	_ = sandbox.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}

func sandboxPaths(p pal.Platform, cfg config.Config) sandbox.Paths {
	paths := sandbox.Paths{TempDir: filepath.FromSlash(p.TempDir())}
	if cfg.LogFile != "" {
		paths.LogDir = filepath.Dir(cfg.LogFile)
	}
	if exe, err := p.ExecutablePath(); err == nil {
		paths.Executable = exe
	}
	return paths
}
