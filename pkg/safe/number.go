// Package safe provides helpers for numeric conversions with range checks.
package safe

import (
	"fmt"
	"math"
	"time"
)

// Uint64 converts a signed integer to uint64, rejecting negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// UnixTime converts epoch seconds, possibly fractional, into a UTC time.
func UnixTime(seconds float64) (time.Time, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return time.Time{}, fmt.Errorf("epoch seconds %v is not finite", seconds)
	}
	// Bounded to the UnixNano range.
	if seconds > math.MaxInt64/float64(time.Second) || seconds < math.MinInt64/float64(time.Second) {
		return time.Time{}, fmt.Errorf("epoch seconds %v out of range", seconds)
	}
	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(math.Round(frac*float64(time.Second)))).UTC(), nil
}
