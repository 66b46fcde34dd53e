package pal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

const osName = "linux"

// linuxPathMax matches PATH_MAX; readlink never returns more.
const linuxPathMax = 4096

func executablePath() (string, error) {
	buf := make([]byte, linuxPathMax)
	n, err := unix.Readlink("/proc/self/exe", buf)
	if err != nil {
		return "", fmt.Errorf("readlink /proc/self/exe: %w", err)
	}
	return string(buf[:n]), nil
}

// openEphemeralFile prefers an anonymous O_TMPFILE inode, which never has a
// name at all, and falls back to create-then-unlink on filesystems that
// reject it.
func openEphemeralFile(dir string) (*os.File, error) {
	name, err := ephemeralName(dir)
	if err != nil {
		return nil, err
	}
	fd, err := unix.Open(dir, unix.O_TMPFILE|unix.O_RDWR|unix.O_CLOEXEC, 0o600)
	if err == nil {
		return os.NewFile(uintptr(fd), name), nil
	}
	if !errors.Is(err, unix.EOPNOTSUPP) && !errors.Is(err, unix.EISDIR) && !errors.Is(err, unix.EINVAL) {
		return nil, fmt.Errorf("opening O_TMPFILE in %s: %w", dir, err)
	}
	slog.Debug("O_TMPFILE unsupported, unlinking after create", "dir", dir, "error", err)
	return createUnlinked(dir)
}
