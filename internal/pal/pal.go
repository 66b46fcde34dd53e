package pal

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Platform is the set of OS capabilities the program relies on. The native
// implementation is chosen at build time; see Native.
type Platform interface {
	// Name returns the fixed lowercase name of the compiled OS family.
	Name() string
	// Matches reports whether name refers to the compiled OS family.
	Matches(name string) bool

	WallTime() float64
	MonotonicTime() float64

	TempDir() string
	ProcessID() int
	ExecutablePath() (string, error)
	ExecutablePathInto(buf []byte) int

	IsTerminal(fd uintptr) bool
	EnableTerminalColors()

	OpenEphemeralFile() (*os.File, error)
}

type native struct{}

// Native returns the implementation compiled in for the current target.
func Native() Platform {
	return native{}
}

func (native) Name() string                         { return OSName() }
func (native) Matches(name string) bool             { return MatchOS(name) }
func (native) WallTime() float64                    { return WallTime() }
func (native) MonotonicTime() float64               { return MonotonicTime() }
func (native) TempDir() string                      { return TempDir() }
func (native) ProcessID() int                       { return ProcessID() }
func (native) ExecutablePath() (string, error)      { return ExecutablePath() }
func (native) ExecutablePathInto(buf []byte) int    { return ExecutablePathInto(buf) }
func (native) IsTerminal(fd uintptr) bool           { return IsTerminal(fd) }
func (native) EnableTerminalColors()                { EnableTerminalColors() }
func (native) OpenEphemeralFile() (*os.File, error) { return OpenEphemeralFile() }

// OSName returns "linux", "windows" or "macos" on those targets and
// runtime.GOOS everywhere else.
func OSName() string {
	return osName
}

// MatchOS reports whether name refers to the OS this binary was built for.
// The comparison is case-sensitive. "macos" and "darwin" are aliases.
func MatchOS(name string) bool {
	return matchOS(osName, name)
}

func matchOS(target, name string) bool {
	switch name {
	case "":
		return false
	case "linux", "windows":
		return target == name
	case "macos", "darwin":
		return target == "macos"
	default:
		return target == name
	}
}

var tempDir = sync.OnceValue(resolveTempDir)

// TempDir returns the platform temp directory with forward slashes and no
// trailing slash. It is resolved on first use and cached for the life of the
// process.
func TempDir() string {
	return tempDir()
}

// normalizeTempPath converts backslashes to forward slashes and drops a
// single trailing slash.
func normalizeTempPath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// ProcessID returns the OS process identifier of the caller.
func ProcessID() int {
	return processID()
}

// ExecutablePath returns the absolute path of the running executable.
// Targets with no way to resolve it return errors.ErrUnsupported.
func ExecutablePath() (string, error) {
	return executablePath()
}

// ExecutablePathInto writes the executable path into buf and returns the
// number of bytes written. The whole buffer is zeroed first, the path is
// truncated so at least one trailing zero byte remains, and on any failure
// the buffer is left all zero and 0 is returned.
func ExecutablePathInto(buf []byte) int {
	clear(buf)
	p, err := executablePath()
	if err != nil {
		return 0
	}
	return copyPathInto(buf, p)
}

func copyPathInto(buf []byte, p string) int {
	if len(buf) == 0 {
		return 0
	}
	return copy(buf[:len(buf)-1], p)
}

// IsTerminal reports whether fd is connected to an interactive terminal,
// including Cygwin/MSYS pseudo terminals on Windows.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// EnableTerminalColors turns on ANSI escape processing for stdout and stderr
// where the console needs an explicit opt-in. It is safe to call any number
// of times and does nothing on targets that interpret escapes natively.
func EnableTerminalColors() {
	enableTerminalColors()
}
