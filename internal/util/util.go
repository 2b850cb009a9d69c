package util

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the format of ranking date buckets.
const DateLayout = "2006-01-02"

// DateKey formats t as a YYYY-MM-DD bucket in loc.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	return t.In(loc).Format(DateLayout)
}

// ParseDateKey validates a YYYY-MM-DD bucket.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateLayout, key)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", key)
	}

	return t, nil
}

// ShiftDateKey moves a YYYY-MM-DD bucket by days, which may be negative.
func ShiftDateKey(key string, days int) (string, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return "", err
	}

	return t.AddDate(0, 0, days).Format(DateLayout), nil
}

// DateKeysBetween lists every bucket from first to last inclusive.
func DateKeysBetween(first, last string) ([]string, error) {
	from, err := ParseDateKey(first)
	if err != nil {
		return nil, err
	}
	to, err := ParseDateKey(last)
	if err != nil {
		return nil, err
	}

	var keys []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(DateLayout))
	}

	return keys, nil
}

// RoundHalfUp rounds v to the nearest integer; halves round toward positive infinity.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
