package schedule

import (
	"time"

	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
)

// TimeRange is a single shift window. Both fields are 24-hour "HH:MM"
// strings. A range whose end is earlier than its start wraps past midnight.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DurationMinutes returns the worked minutes covered by the range,
// treating end < start as an overnight shift.
func (r TimeRange) DurationMinutes() (int, error) {
	start, err := timeutil.ParseMinutes(r.Start)
	if err != nil {
		return 0, err
	}
	end, err := timeutil.ParseMinutes(r.End)
	if err != nil {
		return 0, err
	}
	if end < start {
		end += 24 * 60
	}
	return end - start, nil
}

// Validate checks both clock fields.
func (r TimeRange) Validate() error {
	if _, err := timeutil.ParseMinutes(r.Start); err != nil {
		return err
	}
	if _, err := timeutil.ParseMinutes(r.End); err != nil {
		return err
	}
	return nil
}

// DaySchedule maps employee IDs to their shift for one date. A nil entry
// means the employee was explicitly given no shift that day; a missing key
// means the employee was never considered. The distinction matters to
// auto-fill, which only touches missing keys.
type DaySchedule map[string]*TimeRange

// Clone returns a copy that shares no structure with the receiver.
func (d DaySchedule) Clone() DaySchedule {
	if d == nil {
		return nil
	}
	out := make(DaySchedule, len(d))
	for id, r := range d {
		if r == nil {
			out[id] = nil
			continue
		}
		cp := *r
		out[id] = &cp
	}
	return out
}

// ScheduleStatus mirrors the lifecycle the schedule store keeps for a
// persisted weekly schedule.
type ScheduleStatus string

const (
	ScheduleStatusDraft     ScheduleStatus = "DRAFT"
	ScheduleStatusPublished ScheduleStatus = "PUBLISHED"
	ScheduleStatusArchived  ScheduleStatus = "ARCHIVED"
)

var ScheduleStatusValues = []string{
	string(ScheduleStatusDraft),
	string(ScheduleStatusPublished),
	string(ScheduleStatusArchived),
}

// MonthSchedule is the month-keyed calendar assembled from independently
// fetched weekly schedules. Days is keyed by "YYYY-MM-DD".
//
// ModifiedAfterSent starts false, flips to true on any mutating operation
// and is cleared only by MarkSent.
type MonthSchedule struct {
	ID                string
	StoreID           string
	YearMonth         string // "YYYY-MM"
	Days              map[string]DaySchedule
	LastSentAt        *time.Time
	ModifiedAfterSent bool
}

// NewMonthSchedule returns the empty calendar created on first view of a
// month.
func NewMonthSchedule(storeID, yearMonth string) MonthSchedule {
	return MonthSchedule{
		StoreID:   storeID,
		YearMonth: yearMonth,
		Days:      make(map[string]DaySchedule),
	}
}

// Clone deep-copies the schedule so mutation operations can return new
// values instead of aliasing caller state.
func (m MonthSchedule) Clone() MonthSchedule {
	out := m
	out.Days = make(map[string]DaySchedule, len(m.Days))
	for key, day := range m.Days {
		out.Days[key] = day.Clone()
	}
	if m.LastSentAt != nil {
		sent := *m.LastSentAt
		out.LastSentAt = &sent
	}
	return out
}

// ShiftAt returns the entry for (dateKey, employeeID). ok reports whether
// the cell exists at all; a true ok with a nil range is an explicit
// "no shift".
func (m MonthSchedule) ShiftAt(dateKey, employeeID string) (r *TimeRange, ok bool) {
	day, ok := m.Days[dateKey]
	if !ok {
		return nil, false
	}
	r, ok = day[employeeID]
	return r, ok
}

// WeeklySchedule is one persisted week as the schedule store keeps it.
type WeeklySchedule struct {
	ID        string
	StoreID   string
	WeekStart time.Time // Monday
	Status    ScheduleStatus
	SentAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Shift is a single persisted assignment inside a weekly schedule.
// StartTime and EndTime are "HH:MM:SS" at the persistence boundary and are
// truncated to "HH:MM" when assembled into a MonthSchedule.
type Shift struct {
	ID         string
	ScheduleID string
	EmployeeID string
	Date       time.Time
	StartTime  string
	EndTime    string
}
