//go:build !windows && !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris)

package pal

func wallTime() float64 {
	return portableWallTime()
}

func monotonicTime() float64 {
	return portableMonotonicTime()
}
