//go:build unix && !linux && !darwin

package pal

import (
	"errors"
	"fmt"
	"os"
	"runtime"
)

var osName = runtime.GOOS

func executablePath() (string, error) {
	p, err := os.Executable()
	if err != nil {
		if errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
		return "", fmt.Errorf("resolving executable: %w", err)
	}
	return p, nil
}

func openEphemeralFile(dir string) (*os.File, error) {
	return createUnlinked(dir)
}
