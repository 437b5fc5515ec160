//go:build windows

package btime

import (
	"errors"
	"math"
	"testing"
)

func TestFiletimeFromUnix(t *testing.T) {
	for _, seconds := range []int64{0, 1, 1672531200} {
		ft, err := filetimeFromUnix(seconds)
		if err != nil {
			t.Fatalf("filetimeFromUnix(%d) = %v, want nil", seconds, err)
		}
		ticks := uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
		want := uint64(seconds)*filetimeTicksPerSecond + filetimeUnixEpochDiff
		if ticks != want {
			t.Errorf("filetimeFromUnix(%d) = %d ticks, want %d", seconds, ticks, want)
		}
	}
}

func TestFiletimeFromUnixOverflow(t *testing.T) {
	seconds := int64(math.MaxInt64 / filetimeTicksPerSecond)
	if _, err := filetimeFromUnix(seconds); !errors.Is(err, ErrOverflow) {
		t.Errorf("filetimeFromUnix(%d) = %v, want ErrOverflow", seconds, err)
	}
}

func TestSetOverflowingTimestamp(t *testing.T) {
	// Conversion fails before any OS call, so the path is never opened.
	seconds := int64(math.MaxInt64 / filetimeTicksPerSecond)
	if err := Set(`C:\does\not\exist`, seconds); !errors.Is(err, ErrOverflow) {
		t.Errorf("Set with overflowing timestamp = %v, want ErrOverflow", err)
	}
}
