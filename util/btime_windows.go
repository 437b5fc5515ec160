//go:build windows

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
	attr, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, ErrNoBirthTime
	}
	return time.Unix(0, attr.CreationTime.Nanoseconds()).UTC(), nil
}
