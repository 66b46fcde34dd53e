package pal

import "time"

// Windows FILETIME counts 100ns ticks since 1601-01-01 UTC.
const (
	fileTimeEpochDiff    = 116444736000000000
	fileTimeTicksPerSec  = 10000000.0
	nanosecondsPerSecond = 1e9
)

// WallTime returns seconds since the Unix epoch with sub-second precision.
func WallTime() float64 {
	return wallTime()
}

// MonotonicTime returns seconds on a clock that never goes backwards within
// the process. Only differences between two readings are meaningful.
func MonotonicTime() float64 {
	return monotonicTime()
}

func fileTimeToUnix(ticks uint64) float64 {
	return float64(int64(ticks-fileTimeEpochDiff)) / fileTimeTicksPerSec
}

func secondsFrom(sec, nsec int64) float64 {
	return float64(sec) + float64(nsec)/nanosecondsPerSecond
}

// processStart carries the runtime's monotonic reading.
var processStart = time.Now()

func portableWallTime() float64 {
	now := time.Now()
	return secondsFrom(now.Unix(), int64(now.Nanosecond()))
}

func portableMonotonicTime() float64 {
	return time.Since(processStart).Seconds()
}
