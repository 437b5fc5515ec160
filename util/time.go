package util

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrNoBirthTime is returned by GetBirthTime when the platform or the
// filesystem does not expose a birth time for the path.
var ErrNoBirthTime = errors.New("birth time not available")

// ParseTimestamp parses a user-supplied time value. It accepts Unix seconds
// (integer or fractional, truncated to whole seconds) or an RFC3339
// timestamp such as 2023-01-01T00:00:00Z. The result is in UTC.
func ParseTimestamp(value string) (time.Time, error) {
	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		if seconds < 0 {
			return time.Time{}, fmt.Errorf("negative timestamp %d", seconds)
		}
		return time.Unix(seconds, 0).UTC(), nil
	}

	if seconds, err := strconv.ParseFloat(value, 64); err == nil {
		if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 || seconds >= float64(math.MaxInt64) {
			return time.Time{}, fmt.Errorf("timestamp %q out of range", value)
		}
		return time.Unix(int64(seconds), 0).UTC(), nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither Unix seconds nor an RFC3339 time", value)
	}
	return t.UTC().Truncate(time.Second), nil
}
