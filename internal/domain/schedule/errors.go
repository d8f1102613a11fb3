package schedule

import "errors"

var (
	// Weekly schedule errors
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrShiftNotFound    = errors.New("shift not found")

	// Month assembly errors
	ErrInvalidYearMonth = errors.New("invalid year-month, use YYYY-MM")
	ErrInvalidDateKey   = errors.New("invalid date, use YYYY-MM-DD")
	ErrWeekOutOfRange   = errors.New("week index out of range for this month")
)
