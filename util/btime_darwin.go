//go:build darwin

package util

import (
	"os"
	"syscall"
	"time"
)

// GetBirthTime returns the birth time of the file at path.
func GetBirthTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, ErrNoBirthTime
	}
	return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec).UTC(), nil
}
