//go:build !unix && !windows

package pal

import (
	"errors"
	"os"
	"runtime"
)

var osName = runtime.GOOS

const otherTempDir = "/tmp"

func resolveTempDir() string {
	return otherTempDir
}

func processID() int {
	return os.Getpid()
}

func executablePath() (string, error) {
	return "", errors.ErrUnsupported
}

func enableTerminalColors() {}

func openEphemeralFile(dir string) (*os.File, error) {
	return createUnlinked(dir)
}
