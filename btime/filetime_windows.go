//go:build windows

package btime

import (
	"fmt"
	"math"

	"golang.org/x/sys/windows"
)

const (
	// FILETIME counts 100-nanosecond intervals since 1601-01-01T00:00:00Z.
	filetimeTicksPerSecond = 10_000_000
	filetimeUnixEpochDiff  = 116444736000000000
)

// filetimeFromUnix converts a Unix timestamp in seconds to a Windows
// FILETIME value.
func filetimeFromUnix(seconds int64) (windows.Filetime, error) {
	if seconds > (math.MaxInt64-filetimeUnixEpochDiff)/filetimeTicksPerSecond {
		return windows.Filetime{}, fmt.Errorf("%w: %d", ErrOverflow, seconds)
	}
	ticks := seconds*filetimeTicksPerSecond + filetimeUnixEpochDiff
	return windows.Filetime{
		LowDateTime:  uint32(ticks & 0xFFFFFFFF),
		HighDateTime: uint32(ticks >> 32),
	}, nil
}
