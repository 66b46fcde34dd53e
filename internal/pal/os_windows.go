package pal

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const osName = "windows"

const (
	windowsTempDirFallback = "C:/Windows/Temp"
	// windowsPathBuffer is the size, in UTF-16 units, of the temp dir buffer.
	windowsPathBuffer = 1024
	// windowsLongPathMax bounds the executable path buffer growth.
	windowsLongPathMax = 32768
)

var (
	modkernel32                   = windows.NewLazySystemDLL("kernel32.dll")
	procQueryPerformanceCounter   = modkernel32.NewProc("QueryPerformanceCounter")
	procQueryPerformanceFrequency = modkernel32.NewProc("QueryPerformanceFrequency")
)

func wallTime() float64 {
	var ft windows.Filetime
	windows.GetSystemTimeAsFileTime(&ft)
	return fileTimeToUnix(uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime))
}

// perfFrequency is the QueryPerformanceCounter tick rate, fixed at boot.
// Zero means the counter is unusable.
var perfFrequency = sync.OnceValue(func() int64 {
	var freq int64
	r, _, err := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&freq)))
	if r == 0 || freq <= 0 {
		slog.Debug("QueryPerformanceFrequency failed, using runtime clock", "error", err)
		return 0
	}
	return freq
})

func monotonicTime() float64 {
	freq := perfFrequency()
	if freq == 0 {
		return portableMonotonicTime()
	}
	var now int64
	procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&now)))
	return float64(now) / float64(freq)
}

func resolveTempDir() string {
	buf := make([]uint16, windowsPathBuffer)
	n, err := windows.GetTempPath(uint32(len(buf)), &buf[0])
	if err != nil || n == 0 || n >= uint32(len(buf)) {
		slog.Debug("GetTempPath failed, using fallback", "fallback", windowsTempDirFallback, "length", n, "error", err)
		return windowsTempDirFallback
	}
	return normalizeTempPath(windows.UTF16ToString(buf[:n]))
}

func processID() int {
	return int(windows.GetCurrentProcessId())
}

// executablePath grows the buffer until GetModuleFileNameW stops
// truncating, up to the long-path limit.
func executablePath() (string, error) {
	for size := uint32(windows.MAX_PATH); size <= windowsLongPathMax; size *= 2 {
		buf := make([]uint16, size)
		n, err := windows.GetModuleFileName(0, &buf[0], size)
		if err != nil {
			return "", fmt.Errorf("GetModuleFileName: %w", err)
		}
		if n < size {
			return windows.UTF16ToString(buf[:n]), nil
		}
	}
	return "", fmt.Errorf("GetModuleFileName: path longer than %d characters", windowsLongPathMax)
}

func enableTerminalColors() {
	for _, std := range []uint32{windows.STD_OUTPUT_HANDLE, windows.STD_ERROR_HANDLE} {
		enableVirtualTerminal(std)
	}
}

func enableVirtualTerminal(std uint32) {
	h, err := windows.GetStdHandle(std)
	if err != nil || h == windows.InvalidHandle || h == 0 {
		return
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		// Redirected to a file or pipe.
		return
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return
	}
	if err := windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		slog.Debug("enabling virtual terminal processing failed", "handle", std, "error", err)
	}
}

func openEphemeralFile(dir string) (*os.File, error) {
	name, err := ephemeralName(dir)
	if err != nil {
		return nil, err
	}
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("encoding ephemeral file name: %w", err)
	}
	h, err := windows.CreateFile(
		p,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		0,
		nil,
		windows.CREATE_NEW,
		windows.FILE_ATTRIBUTE_TEMPORARY|windows.FILE_FLAG_DELETE_ON_CLOSE,
		0,
	)
	if err != nil {
		return nil, fmt.Errorf("creating ephemeral file %s: %w", name, err)
	}
	return os.NewFile(uintptr(h), name), nil
}
