package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat is returned when a clock time string is not a valid
// 24-hour "HH:MM" value.
var ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")

var clockTimeRegex = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)

// ParseMinutes converts a "HH:MM" clock time to minutes since midnight.
// Upstream callers do not always guarantee the format, so the input is
// validated here rather than trusted.
func ParseMinutes(clock string) (int, error) {
	m := clockTimeRegex.FindStringSubmatch(clock)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, clock)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, clock)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, clock)
	}

	return hour*60 + minute, nil
}

// IsValidClockTime reports whether clock is a valid 24-hour "HH:MM" value.
func IsValidClockTime(clock string) bool {
	_, err := ParseMinutes(clock)
	return err == nil
}

// TruncateSeconds normalizes "HH:MM:SS" to "HH:MM". Inputs that are already
// "HH:MM" are returned unchanged.
func TruncateSeconds(clock string) string {
	parts := strings.SplitN(clock, ":", 3)
	if len(parts) < 2 {
		return clock
	}
	return parts[0] + ":" + parts[1]
}

// ExpandSeconds converts "HH:MM" to the "HH:MM:SS" form the schedule API
// speaks. Inputs that already carry seconds are returned unchanged.
func ExpandSeconds(clock string) string {
	if strings.Count(clock, ":") >= 2 {
		return clock
	}
	return clock + ":00"
}

// DateKey renders t as the "YYYY-MM-DD" key used throughout the schedule
// domain.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateKey parses a "YYYY-MM-DD" schedule key.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse("2006-01-02", key)
}

// YearMonth renders t as "YYYY-MM".
func YearMonth(t time.Time) string {
	return t.Format("2006-01")
}

// Week is one Monday-start row of the wall calendar for a month.
type Week struct {
	Index int
	Start time.Time
	End   time.Time
	Dates []time.Time
}

// Contains reports whether day falls inside the week.
func (w Week) Contains(day time.Time) bool {
	for _, d := range w.Dates {
		if d.Equal(day) {
			return true
		}
	}
	return false
}

// WeeksInMonth returns every Monday-start week overlapping the given month,
// in chronological order. Weeks at the edges spill into the adjacent months
// on purpose: the result mirrors a wall calendar grid.
func WeeksInMonth(year int, month time.Month) []Week {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	weekStart := startOfISOWeek(monthStart)

	var weeks []Week
	for index := 0; !weekStart.After(monthEnd); index++ {
		dates := make([]time.Time, 7)
		for i := range dates {
			dates[i] = weekStart.AddDate(0, 0, i)
		}
		weeks = append(weeks, Week{
			Index: index,
			Start: weekStart,
			End:   dates[6],
			Dates: dates,
		})
		weekStart = weekStart.AddDate(0, 0, 7)
	}
	return weeks
}

// startOfISOWeek returns the Monday on or before t.
func startOfISOWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
