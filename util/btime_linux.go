//go:build linux

package util

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// GetBirthTime returns the birth time of the file at path via statx(2).
// This needs kernel 4.11+ and filesystem support (ext4, btrfs, xfs);
// otherwise ErrNoBirthTime is returned.
func GetBirthTime(path string) (time.Time, error) {
	var stat unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stat); err != nil {
		return time.Time{}, &fs.PathError{Op: "statx", Path: path, Err: err}
	}
	if stat.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, ErrNoBirthTime
	}
	return time.Unix(stat.Btime.Sec, int64(stat.Btime.Nsec)).UTC(), nil
}
