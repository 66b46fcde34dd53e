// Package config loads the CLI settings from the environment and an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvDebug      = "PAL_DEBUG"
	EnvLogFile    = "PAL_LOG_FILE"
	EnvNoColor    = "NO_COLOR"
	EnvForceColor = "FORCE_COLOR"
	EnvTerm       = "TERM"
)

// Config holds the CLI settings. The platform layer itself reads none of
// these.
type Config struct {
	Debug   bool
	LogFile string

	noColor    bool
	forceColor bool
	dumbTerm   bool
}

// Load reads .env (if present) and then the process environment. Variables
// already set in the environment win over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	var cfg Config
	// Invalid values are ignored, same as unset.
	if v, err := strconv.ParseBool(os.Getenv(EnvDebug)); err == nil {
		cfg.Debug = v
	}
	cfg.LogFile = os.Getenv(EnvLogFile)
	_, cfg.noColor = os.LookupEnv(EnvNoColor)
	cfg.forceColor = os.Getenv(EnvForceColor) != ""
	cfg.dumbTerm = os.Getenv(EnvTerm) == "dumb"
	return cfg
}

// UseColor decides whether output should be styled. NO_COLOR wins over
// FORCE_COLOR, which wins over TERM=dumb, which wins over isTTY.
func (c Config) UseColor(isTTY bool) bool {
	switch {
	case c.noColor:
		return false
	case c.forceColor:
		return true
	case c.dumbTerm:
		return false
	default:
		return isTTY
	}
}
