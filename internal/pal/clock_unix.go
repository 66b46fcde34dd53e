//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris

package pal

import (
	"log/slog"
	"sync"

	"golang.org/x/sys/unix"
)

func wallTime() float64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return portableWallTime()
	}
	return secondsFrom(int64(ts.Sec), int64(ts.Nsec))
}

// monotonicSource picks the clock once so readings never mix sources.
var monotonicSource = sync.OnceValue(func() func() float64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		slog.Debug("CLOCK_MONOTONIC unavailable, using runtime clock", "error", err)
		return portableMonotonicTime
	}
	return clockMonotonic
})

func clockMonotonic() float64 {
	var ts unix.Timespec
	_ = unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts)
	return secondsFrom(int64(ts.Sec), int64(ts.Nsec))
}

func monotonicTime() float64 {
	return monotonicSource()()
}
