//go:build openbsd

package sandbox

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	mu          sync.Mutex
	initialized = false
)

// promises is everything the CLI needs until exit. Pledge can only drop
// promises later, never add them.
const promises = "stdio rpath wpath cpath tty"

const shutdownPromises = "stdio"

// Init unveils the given paths plus the fixed system paths, locks unveil and
// pledges. It may only be called once per process.
func Init(paths Paths) error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return fmt.Errorf("sandbox already initialized")
	}

	if err := setupUnveil(paths); err != nil {
		return fmt.Errorf("unveil setup failed: %w", err)
	}
	if err := unix.UnveilBlock(); err != nil {
		return fmt.Errorf("unveil lock failed: %w", err)
	}
	if err := unix.PledgePromises(promises); err != nil {
		return fmt.Errorf("pledge failed: %w", err)
	}

	initialized = true
	slog.Debug("openbsd sandbox active",
		"promises", promises,
		"temp_dir", paths.TempDir,
		"log_dir", paths.LogDir,
	)
	return nil
}

func setupUnveil(paths Paths) error {
	systemPaths := []struct {
		path  string
		perms string
	}{
		{"/dev/null", "rw"},
		{"/dev/tty", "rw"},
		{"/usr/share/zoneinfo", "r"},
		{"/etc/localtime", "r"},
	}
	for _, sp := range systemPaths {
		if err := unix.Unveil(sp.path, sp.perms); err != nil {
			// Not every system has every path.
			slog.Debug("unveil skipped", "path", sp.path, "error", err)
		}
	}

	if paths.TempDir == "" {
		return fmt.Errorf("temp dir is not set")
	}
	if err := unix.Unveil(paths.TempDir, "rwc"); err != nil {
		return fmt.Errorf("unveil temp dir %s: %w", paths.TempDir, err)
	}

	if paths.LogDir != "" {
		abs, err := filepath.Abs(paths.LogDir)
		if err != nil {
			return fmt.Errorf("resolving log dir: %w", err)
		}
		if err := unix.Unveil(abs, "rwc"); err != nil {
			return fmt.Errorf("unveil log dir %s: %w", abs, err)
		}
	}

	if paths.Executable != "" {
		if err := unix.Unveil(paths.Executable, "r"); err != nil {
			slog.Debug("unveil executable skipped", "path", paths.Executable, "error", err)
		}
	}
	return nil
}

// Shutdown drops to stdio only. Call it after the last file operation.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	if !initialized {
		return nil
	}
	if err := unix.PledgePromises(shutdownPromises); err != nil {
		slog.Debug("pledge shutdown failed", "error", err)
		return err
	}
	return nil
}

// IsInitialized reports whether the sandbox is active.
func IsInitialized() bool {
	mu.Lock()
	defer mu.Unlock()
	return initialized
}
