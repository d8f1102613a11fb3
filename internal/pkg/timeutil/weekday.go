package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidWeekday is returned for weekday names outside MONDAY..SUNDAY.
var ErrInvalidWeekday = errors.New("invalid weekday name")

var weekdayNames = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

// ParseWeekday parses the uppercase weekday names the API uses
// ("MONDAY".."SUNDAY").
func ParseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdayNames[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
	}
	return day, nil
}

// WeekdayName renders a weekday in the API's uppercase form.
func WeekdayName(day time.Weekday) string {
	return strings.ToUpper(day.String())
}
