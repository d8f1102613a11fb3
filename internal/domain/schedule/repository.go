package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	// GetMonth assembles the calendar for one store and month from the
	// persisted weekly rows. Returns ErrScheduleNotFound when no week of
	// the month has been persisted yet.
	GetMonth(ctx context.Context, storeID, yearMonth string) (*MonthSchedule, error)
	// SaveMonth persists the calendar, splitting it back into weekly rows.
	SaveMonth(ctx context.Context, m *MonthSchedule) error
	GetShiftsByDateRange(ctx context.Context, storeID string, from, to time.Time) ([]Shift, error)
}
