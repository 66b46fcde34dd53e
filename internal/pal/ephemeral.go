package pal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const ephemeralPrefix = "pal-"

// OpenEphemeralFile creates a uniquely named file in TempDir, opened for
// reading and writing at offset 0. Its storage is reclaimed when the file is
// closed; on unix the name is already gone by the time the file is returned.
// The caller owns the file and must close it.
func OpenEphemeralFile() (*os.File, error) {
	dir := TempDir()
	if dir == "" {
		return nil, fmt.Errorf("ephemeral file: no temp directory")
	}
	return openEphemeralFile(filepath.FromSlash(dir))
}

func ephemeralName(dir string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generating ephemeral file name: %w", err)
	}
	return filepath.Join(dir, ephemeralPrefix+id.String()+".tmp"), nil
}

// createUnlinked creates a fresh file exclusively and removes its name right
// away, leaving an open descriptor whose inode disappears on close.
func createUnlinked(dir string) (*os.File, error) {
	name, err := ephemeralName(dir)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("creating ephemeral file: %w", err)
	}
	if err := os.Remove(name); err != nil {
		f.Close()
		os.Remove(name) // best-effort
		return nil, fmt.Errorf("unlinking ephemeral file: %w", err)
	}
	return f, nil
}
