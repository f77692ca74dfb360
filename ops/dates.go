package ops

import (
	"errors"
	"fmt"
	"time"
)

// ClosestDateLayout is the layout used to format results of
// FindClosestDateString, with microsecond precision.
const ClosestDateLayout = "2006-01-02 15:04:05.000000"

// dateTimeLayouts are tried in order by ParseDateTime.
var dateTimeLayouts = []string{
	ClosestDateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ParseDateTime parses a date or date-time string, trying a set of common
// layouts (ISO 8601 date and date-time forms, with and without fractional
// seconds).
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("ops: unrecognized date-time %q", s)
}

// FindClosestDate returns the candidate from lookup with the smallest
// absolute time difference to target. The first candidate wins ties.
// An empty lookup returns an error.
func FindClosestDate(target time.Time, lookup []time.Time) (time.Time, error) {
	if len(lookup) == 0 {
		return time.Time{}, errors.New("ops: empty date lookup")
	}

	closest := lookup[0]
	best := absDuration(lookup[0].Sub(target))

	for _, candidate := range lookup[1:] {
		if d := absDuration(candidate.Sub(target)); d < best {
			closest, best = candidate, d
		}
	}

	return closest, nil
}

// FindClosestDateString is the string-based form of FindClosestDate.
// The target and candidates are parsed with ParseDateTime and the winner
// is formatted with ClosestDateLayout.
func FindClosestDateString(target string, lookup []string) (string, error) {
	targetTime, err := ParseDateTime(target)
	if err != nil {
		return "", err
	}

	candidates := make([]time.Time, len(lookup))
	for i, s := range lookup {
		if candidates[i], err = ParseDateTime(s); err != nil {
			return "", err
		}
	}

	closest, err := FindClosestDate(targetTime, candidates)
	if err != nil {
		return "", err
	}

	return closest.Format(ClosestDateLayout), nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
