package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/charmbracelet/pal/internal/config"
	"github.com/charmbracelet/pal/internal/pal"
)

const (
	defaultSamples = 10000
	wallTimeSlack  = 1.0
	exeBufferSize  = 4096
)

var payload = []byte("pal ephemeral round trip\n")

type check struct {
	name string
	run  func(p pal.Platform) error
}

func newCheckCmd(p pal.Platform, cfg config.Config) *cobra.Command {
	var samples int
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Self-check the platform primitives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 2 {
				return fmt.Errorf("--samples must be at least 2, got %d", samples)
			}
			th := themeFor(cfg.UseColor(p.IsTerminal(os.Stdout.Fd())))
			return runChecks(cmd.OutOrStdout(), th, p, checks(samples))
		},
	}
	cmd.Flags().IntVar(&samples, "samples", defaultSamples, "Number of monotonic clock readings to compare")
	return cmd
}

func checks(samples int) []check {
	return []check{
		{"monotonic clock", func(p pal.Platform) error { return checkMonotonic(p, samples) }},
		{"wall clock", checkWallTime},
		{"temp dir", checkTempDir},
		{"executable path", checkExecutablePath},
		{"ephemeral file", checkEphemeralFile},
	}
}

func runChecks(w io.Writer, th theme, p pal.Platform, cs []check) error {
	var errs []error
	for _, c := range cs {
		if err := c.run(p); err != nil {
			fmt.Fprintf(w, "%s %s: %v\n", th.Error.Render("FAIL"), c.name, err)
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
			continue
		}
		fmt.Fprintf(w, "%s   %s\n", th.Success.Render("ok"), c.name)
	}
	return errors.Join(errs...)
}

func checkMonotonic(p pal.Platform, samples int) error {
	prev := p.MonotonicTime()
	for i := 1; i < samples; i++ {
		now := p.MonotonicTime()
		if now < prev {
			return fmt.Errorf("reading %d went backwards: %f < %f", i, now, prev)
		}
		prev = now
	}
	return nil
}

func checkWallTime(p pal.Platform) error {
	want := float64(time.Now().UnixNano()) / 1e9
	got := p.WallTime()
	if diff := math.Abs(got - want); diff > wallTimeSlack {
		return fmt.Errorf("off by %.3fs from the runtime clock", diff)
	}
	return nil
}

func checkTempDir(p pal.Platform) error {
	dir := p.TempDir()
	switch {
	case dir == "":
		return errors.New("empty")
	case strings.Contains(dir, `\`):
		return fmt.Errorf("%q contains backslashes", dir)
	case len(dir) > 1 && strings.HasSuffix(dir, "/"):
		return fmt.Errorf("%q has a trailing slash", dir)
	case p.TempDir() != dir:
		return errors.New("not stable across calls")
	}
	return nil
}

func checkExecutablePath(p pal.Platform) error {
	buf := bytes.Repeat([]byte{0xff}, exeBufferSize)
	n := p.ExecutablePathInto(buf)
	if n >= len(buf) {
		return fmt.Errorf("wrote %d bytes into a %d byte buffer", n, len(buf))
	}
	for i := n; i < len(buf); i++ {
		if buf[i] != 0 {
			return fmt.Errorf("byte %d not zeroed", i)
		}
	}

	exe, err := p.ExecutablePath()
	if errors.Is(err, errors.ErrUnsupported) {
		if n != 0 {
			return errors.New("buffer filled on a target without executable path support")
		}
		return nil
	}
	if err != nil {
		return err
	}
	if got := string(buf[:n]); got != exe && len(exe) < len(buf) {
		return fmt.Errorf("buffer holds %q, want %q", got, exe)
	}
	return nil
}

func checkEphemeralFile(p pal.Platform) error {
	f, err := p.OpenEphemeralFile()
	if err != nil {
		return err
	}
	name := f.Name()
	defer f.Close()

	if _, err := f.Write(payload); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	got, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if !bytes.Equal(got, payload) {
		return fmt.Errorf("read back %d bytes, want %d", len(got), len(payload))
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if _, err := os.Stat(name); !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s still present after close", name)
	}
	return nil
}
