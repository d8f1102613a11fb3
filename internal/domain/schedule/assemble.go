package schedule

import (
	"time"

	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
)

// The operations in this file are the only way a MonthSchedule changes.
// Every one of them takes the prior value and returns a new one; callers
// compose them sequentially and nothing here needs synchronization.

// MergeWeekDetail overlays one week's fetched shifts onto the month.
// Each date key present in detail replaces that date wholesale, so stale
// entries for employees removed from a day are dropped; dates absent from
// detail are untouched. Merging a fetch is not a user edit, so
// ModifiedAfterSent is left alone.
func MergeWeekDetail(m MonthSchedule, detail map[string]DaySchedule) MonthSchedule {
	out := m.Clone()
	for dateKey, day := range detail {
		out.Days[dateKey] = day.Clone()
	}
	return out
}

// ReplaceWeekDetail applies an owner's week edit: the same wholesale
// replacement as MergeWeekDetail, but counted as a modification so a
// re-saved week trips the sent-schedule warning.
func ReplaceWeekDetail(m MonthSchedule, detail map[string]DaySchedule) MonthSchedule {
	out := MergeWeekDetail(m, detail)
	out.ModifiedAfterSent = true
	return out
}

// SetShift sets or explicitly clears a single (date, employee) cell.
// A nil range records "no shift" rather than removing the key.
func SetShift(m MonthSchedule, dateKey, employeeID string, r *TimeRange) MonthSchedule {
	out := m.Clone()
	day := out.Days[dateKey]
	if day == nil {
		day = make(DaySchedule)
		out.Days[dateKey] = day
	}
	if r == nil {
		day[employeeID] = nil
	} else {
		cp := *r
		day[employeeID] = &cp
	}
	out.ModifiedAfterSent = true
	return out
}

// AddEmployees places each employee's default shift window at the given
// date, overwriting whatever was there. defaults maps employee ID to the
// window resolved from that employee's preset.
func AddEmployees(m MonthSchedule, dateKey string, defaults map[string]TimeRange) MonthSchedule {
	out := m.Clone()
	day := out.Days[dateKey]
	if day == nil {
		day = make(DaySchedule)
		out.Days[dateKey] = day
	}
	for employeeID, window := range defaults {
		cp := window
		day[employeeID] = &cp
	}
	out.ModifiedAfterSent = true
	return out
}

// AutoFill fills every empty (date, employee) cell across the given weeks
// with the employee's default shift window. Existing entries, including
// explicit nils, are never overwritten, which makes the operation
// idempotent.
func AutoFill(m MonthSchedule, weeks []timeutil.Week, defaults map[string]TimeRange) MonthSchedule {
	out := m.Clone()
	for _, week := range weeks {
		for _, date := range week.Dates {
			dateKey := timeutil.DateKey(date)
			day := out.Days[dateKey]
			if day == nil {
				day = make(DaySchedule)
				out.Days[dateKey] = day
			}
			for employeeID, window := range defaults {
				if _, exists := day[employeeID]; exists {
					continue
				}
				cp := window
				day[employeeID] = &cp
			}
		}
	}
	out.ModifiedAfterSent = true
	return out
}

// CopyWeekPattern stamps the source week's per-day assignments onto each
// target week by day-of-week position. Target dates are overwritten
// wholesale, erasing entries the source day does not have.
func CopyWeekPattern(m MonthSchedule, source timeutil.Week, targets []timeutil.Week) MonthSchedule {
	out := m.Clone()

	pattern := make([]DaySchedule, len(source.Dates))
	for i, date := range source.Dates {
		if day, ok := out.Days[timeutil.DateKey(date)]; ok {
			pattern[i] = day.Clone()
		} else {
			pattern[i] = make(DaySchedule)
		}
	}

	for _, target := range targets {
		for i, date := range target.Dates {
			if i >= len(pattern) {
				break
			}
			out.Days[timeutil.DateKey(date)] = pattern[i].Clone()
		}
	}
	out.ModifiedAfterSent = true
	return out
}

// MarkSent records the send time and resets the modification flag. It is
// the only transition back to the unmodified state.
func MarkSent(m MonthSchedule, now time.Time) MonthSchedule {
	out := m.Clone()
	out.LastSentAt = &now
	out.ModifiedAfterSent = false
	return out
}
