package employee

import (
	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
)

// IsOutsideDefaultShift reports whether an assigned range starts before or
// ends after the employee's default shift window. A nil assignment is never
// a violation. The comparison is on raw same-day minutes; overnight wrap is
// deliberately not considered here.
func IsOutsideDefaultShift(e Employee, assigned *schedule.TimeRange) bool {
	if assigned == nil {
		return false
	}

	window := e.DefaultShift()
	windowStart, err := timeutil.ParseMinutes(window.Start)
	if err != nil {
		return false
	}
	windowEnd, err := timeutil.ParseMinutes(window.End)
	if err != nil {
		return false
	}
	start, err := timeutil.ParseMinutes(assigned.Start)
	if err != nil {
		return false
	}
	end, err := timeutil.ParseMinutes(assigned.End)
	if err != nil {
		return false
	}

	return start < windowStart || end > windowEnd
}
