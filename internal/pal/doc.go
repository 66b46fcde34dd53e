// Package pal is a thin platform abstraction layer over the handful of OS
// primitives the rest of the program needs.
//
// Every target OS gets exactly one native implementation, selected at build
// time with //go:build constraints:
//
//   - os_unix.go:    pid, temp dir and terminal setup for all unix targets.
//   - clock_unix.go: clock_gettime(CLOCK_REALTIME/CLOCK_MONOTONIC).
//   - os_linux.go:   readlink(/proc/self/exe) and O_TMPFILE.
//   - os_darwin.go:  the "macos" name and executable path resolution.
//   - os_bsd.go:     the remaining unix targets.
//   - os_windows.go: QueryPerformanceCounter, GetSystemTimeAsFileTime,
//     GetTempPathW, GetModuleFileNameW, console VT mode and
//     FILE_FLAG_DELETE_ON_CLOSE files.
//   - os_other.go:   js/wasm, plan9 and friends, where most probes degrade;
//     clock_portable.go covers their clocks with the runtime clock.
//
// # Failure model
//
// Nothing here is fatal and nothing is retried. Operations that always have
// an answer (clocks, pid, temp dir, OS name) return plain values; the temp
// dir falls back to a fixed path when the OS query fails. Operations that
// may be unavailable return an error: ExecutablePath reports
// errors.ErrUnsupported on targets with no resolution mechanism, and
// OpenEphemeralFile returns the first failing step. ExecutablePathInto keeps
// the caller-buffer contract: the buffer is zeroed first and stays zeroed on
// failure.
//
// # Concurrency
//
// All functions are safe for concurrent use. The two lazily computed
// process-wide values, the temp dir and the Windows performance-counter
// frequency, are computed once with sync.OnceValue.
package pal
