//go:build unix

package pal

import (
	"golang.org/x/sys/unix"
)

const unixTempDir = "/tmp"

func resolveTempDir() string {
	return unixTempDir
}

func processID() int {
	return unix.Getpid()
}

func enableTerminalColors() {}
