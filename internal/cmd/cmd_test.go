package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmbracelet/pal/internal/config"
	"github.com/charmbracelet/pal/internal/pal"
)

type fakePlatform struct {
	name      string
	exe       string
	exeErr    error
	tempDir   string
	mono      []float64
	monoIndex int
	wall      float64
	ephemeral func() (*os.File, error)
}

func (f *fakePlatform) Name() string { return f.name }
func (f *fakePlatform) Matches(name string) bool {
	return name == f.name || (f.name == "macos" && name == "darwin")
}
func (f *fakePlatform) WallTime() float64 { return f.wall }
func (f *fakePlatform) MonotonicTime() float64 {
	if len(f.mono) == 0 {
		return 0
	}
	v := f.mono[f.monoIndex%len(f.mono)]
	f.monoIndex++
	return v
}
func (f *fakePlatform) TempDir() string                 { return f.tempDir }
func (f *fakePlatform) ProcessID() int                  { return 4242 }
func (f *fakePlatform) ExecutablePath() (string, error) { return f.exe, f.exeErr }
func (f *fakePlatform) ExecutablePathInto(buf []byte) int {
	clear(buf)
	if f.exeErr != nil || len(buf) == 0 {
		return 0
	}
	return copy(buf[:len(buf)-1], f.exe)
}
func (f *fakePlatform) IsTerminal(fd uintptr) bool { return false }
func (f *fakePlatform) EnableTerminalColors()      {}
func (f *fakePlatform) OpenEphemeralFile() (*os.File, error) {
	if f.ephemeral != nil {
		return f.ephemeral()
	}
	return pal.OpenEphemeralFile()
}

func newFake() *fakePlatform {
	return &fakePlatform{
		name:    "linux",
		exe:     "/usr/local/bin/pal",
		tempDir: "/tmp",
		mono:    []float64{1, 2, 3},
		wall:    1700000000.5,
	}
}

func execute(t *testing.T, p pal.Platform, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(p, config.Config{})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInfoPlain(t *testing.T) {
	out, err := execute(t, newFake())
	require.NoError(t, err)

	assert.Contains(t, out, "os: linux\n")
	assert.Contains(t, out, "pid: 4242\n")
	assert.Contains(t, out, "executable: /usr/local/bin/pal\n")
	assert.Contains(t, out, "temp_dir: /tmp\n")
	assert.Contains(t, out, "wall_time: 1700000000.500000\n")
	assert.Contains(t, out, "stdout_tty: false\n")
}

func TestInfoUnavailableExecutable(t *testing.T) {
	p := newFake()
	p.exe, p.exeErr = "", errors.ErrUnsupported

	out, err := execute(t, p, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "executable: (unavailable)\n")
}

func TestInfoJSON(t *testing.T) {
	out, err := execute(t, newFake(), "info", "--json")
	require.NoError(t, err)

	var r Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "linux", r.OS)
	assert.Equal(t, 4242, r.PID)
	assert.Equal(t, "/usr/local/bin/pal", r.Executable)
	assert.Equal(t, "/tmp", r.TempDir)
	assert.Equal(t, 1700000000.5, r.WallTime)
}

func TestWriteReportColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, Report{OS: "windows"}, true))
	assert.Contains(t, buf.String(), "windows")
	assert.Contains(t, buf.String(), "(unavailable)")
}

func TestMatch(t *testing.T) {
	p := newFake()
	p.name = "macos"

	out, err := execute(t, p, "match", "macos", "darwin")
	require.NoError(t, err)
	assert.Equal(t, "macos: true\ndarwin: true\n", out)

	out, err = execute(t, p, "match", "darwin", "windows")
	require.Error(t, err)
	assert.Contains(t, out, "darwin: true\n")
	assert.Contains(t, out, "windows: false\n")
	assert.Contains(t, err.Error(), "1 of 2 names")
}

func TestMatchRequiresArgs(t *testing.T) {
	_, err := execute(t, newFake(), "match")
	assert.Error(t, err)
}

func TestCheckNative(t *testing.T) {
	out, err := execute(t, pal.Native(), "check", "--samples", "1000")
	require.NoError(t, err, out)
	assert.NotContains(t, out, "FAIL")
	assert.Equal(t, 5, strings.Count(out, "ok"))
}

func TestCheckSamplesValidation(t *testing.T) {
	_, err := execute(t, newFake(), "check", "--samples", "1")
	assert.ErrorContains(t, err, "--samples")
}

func TestCheckMonotonicBackwards(t *testing.T) {
	p := newFake()
	p.mono = []float64{5, 6, 4}
	assert.ErrorContains(t, checkMonotonic(p, 3), "backwards")

	p.monoIndex = 0
	p.mono = []float64{5, 5, 6}
	assert.NoError(t, checkMonotonic(p, 3))
}

func TestCheckWallTime(t *testing.T) {
	p := newFake()
	assert.ErrorContains(t, checkWallTime(p), "off by")

	p.wall = pal.WallTime()
	assert.NoError(t, checkWallTime(p))
}

func TestCheckTempDir(t *testing.T) {
	tests := []struct {
		dir     string
		wantErr string
	}{
		{"/tmp", ""},
		{"/", ""},
		{"C:/Windows/Temp", ""},
		{"", "empty"},
		{`C:\Windows\Temp`, "backslashes"},
		{"/tmp/", "trailing slash"},
	}
	for _, tt := range tests {
		p := newFake()
		p.tempDir = tt.dir
		err := checkTempDir(p)
		if tt.wantErr == "" {
			assert.NoError(t, err, tt.dir)
			continue
		}
		assert.ErrorContains(t, err, tt.wantErr, tt.dir)
	}
}

func TestCheckExecutablePath(t *testing.T) {
	p := newFake()
	assert.NoError(t, checkExecutablePath(p))

	p.exe, p.exeErr = "", errors.ErrUnsupported
	assert.NoError(t, checkExecutablePath(p))
}

func TestCheckEphemeralFileLeftBehind(t *testing.T) {
	p := newFake()
	dir := t.TempDir()
	p.ephemeral = func() (*os.File, error) {
		return os.Create(filepath.Join(dir, "kept.tmp"))
	}
	assert.ErrorContains(t, checkEphemeralFile(p), "still present")
}

func TestCheckEphemeralFileOpenError(t *testing.T) {
	p := newFake()
	p.ephemeral = func() (*os.File, error) {
		return nil, errors.New("no space left")
	}

	var out bytes.Buffer
	err := runChecks(&out, plainTheme(), p, []check{{"ephemeral file", checkEphemeralFile}})
	assert.ErrorContains(t, err, "ephemeral file: no space left")
	assert.Equal(t, "FAIL ephemeral file: no space left\n", out.String())
}

func TestThemes(t *testing.T) {
	plain := plainTheme()
	assert.Equal(t, "FAIL", plain.Error.Render("FAIL"))
	assert.Equal(t, "os:", plain.Key.Render("os:"))

	colored := newChallengerDeepTheme()
	assert.Contains(t, colored.Key.Render("os:"), "os:")
}

func TestParseHex(t *testing.T) {
	r, g, b, a := ParseHex("#ff8080").RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x8080), g)
	assert.Equal(t, uint32(0x8080), b)
	assert.Equal(t, uint32(0xffff), a)

	_, _, _, a = ParseHex("not a color").RGBA()
	assert.Zero(t, a)
}

func TestSandboxPaths(t *testing.T) {
	p := newFake()
	paths := sandboxPaths(p, config.Config{LogFile: filepath.Join("logs", "pal.log")})
	assert.Equal(t, filepath.FromSlash("/tmp"), paths.TempDir)
	assert.Equal(t, "logs", paths.LogDir)
	assert.Equal(t, "/usr/local/bin/pal", paths.Executable)

	p.exeErr = errors.ErrUnsupported
	paths = sandboxPaths(p, config.Config{})
	assert.Empty(t, paths.LogDir)
	assert.Empty(t, paths.Executable)
}
