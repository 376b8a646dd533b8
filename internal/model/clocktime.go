package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ClockTime is a wall-clock time of day with minute precision, independent of
// any date. Season files write times as "HH:MM".
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a "HH:MM" string. A single-digit hour is accepted
// ("9:30") since YAML authors rarely zero-pad, and a seconds component is
// tolerated ("18:00:00") since unquoted YAML times sometimes carry one.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ClockTime{}, errors.Newf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, errors.Wrapf(err, "invalid time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, errors.Wrapf(err, "invalid time %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, errors.Newf("invalid time %q: out of range", s)
	}
	if len(parts) == 3 {
		second, err := strconv.Atoi(parts[2])
		if err != nil {
			return ClockTime{}, errors.Wrapf(err, "invalid time %q", s)
		}
		if second < 0 || second > 59 {
			return ClockTime{}, errors.Newf("invalid time %q: out of range", s)
		}
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// On combines the clock time with the given calendar date.
func (c ClockTime) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, date.Location())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
