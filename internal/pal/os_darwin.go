package pal

import (
	"fmt"
	"os"
)

const osName = "macos"

// executablePath relies on os.Executable, which wraps the dyld
// executable_path the runtime records at startup.
func executablePath() (string, error) {
	p, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable: %w", err)
	}
	return p, nil
}

func openEphemeralFile(dir string) (*os.File, error) {
	return createUnlinked(dir)
}
