// Package btime sets the birth time (creation time) of files and directories.
//
// Windows and macOS expose a native mechanism for changing a file's creation
// timestamp; Linux does not, and Set succeeds there without touching the
// filesystem so that callers keep a uniform cross-platform contract.
package btime

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidPath is returned when the path is empty or contains an
	// embedded NUL byte.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidTimestamp is returned when the timestamp is rejected before
	// any conversion is attempted (currently: negative values).
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrOverflow is returned when the timestamp cannot be represented in
	// the platform's native file time format.
	ErrOverflow = errors.New("timestamp overflows native file time")
)

// Set sets the birth time of the file or directory at path to the given Unix
// timestamp in whole seconds.
//
// OS-level failures are returned as *fs.PathError wrapping the platform
// error code, so errors.Is(err, fs.ErrNotExist) and fs.ErrPermission work as
// expected. On Linux, Set validates its arguments and returns nil without
// performing any filesystem access.
func Set(path string, seconds int64) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.IndexByte(path, 0) >= 0 {
		return fmt.Errorf("%w: %q contains an embedded NUL byte", ErrInvalidPath, path)
	}
	if seconds < 0 {
		return fmt.Errorf("%w: %d is before the Unix epoch", ErrInvalidTimestamp, seconds)
	}
	return setBirthTime(path, seconds)
}

// SetTime sets the birth time of the file or directory at path to t,
// truncated to whole seconds.
func SetTime(path string, t time.Time) error {
	return Set(path, t.Unix())
}
