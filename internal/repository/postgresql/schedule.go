package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/scon-hq/scon-backend-go/internal/pkg/database"
	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
)

// scheduleRepositoryImpl persists a month calendar as one schedules row per
// ISO week plus one shifts row per calendar cell. A shifts row with NULL
// times records an explicit day off; a missing row means the cell was never
// touched.
type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// GetMonth implements schedule.ScheduleRepository. Sent state is read only
// from week rows this month owns; the first week may be shared with the
// previous month and its flags belong there.
func (r *scheduleRepositoryImpl) GetMonth(ctx context.Context, storeID, yearMonth string) (*schedule.MonthSchedule, error) {
	q := GetQuerier(ctx, r.db)

	weeks, month, err := weeksForYearMonth(yearMonth)
	if err != nil {
		return nil, err
	}
	from := weeks[0].Start
	to := weeks[len(weeks)-1].End

	query := `
		SELECT id, week_start, sent_at, modified_after_sent
		FROM schedules
		WHERE store_id = $1 AND week_start >= $2 AND week_start <= $3
		ORDER BY week_start
	`

	rows, err := q.Query(ctx, query, storeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := schedule.NewMonthSchedule(storeID, yearMonth)
	found := false
	ownedID := false
	for rows.Next() {
		var id string
		var weekStart time.Time
		var sentAt *time.Time
		var modified bool
		if err := rows.Scan(&id, &weekStart, &sentAt, &modified); err != nil {
			return nil, err
		}
		found = true
		if !monthOwnsWeek(month, weekStart) {
			continue
		}
		if !ownedID {
			m.ID = id
			ownedID = true
		}
		if sentAt != nil && (m.LastSentAt == nil || sentAt.After(*m.LastSentAt)) {
			m.LastSentAt = sentAt
		}
		if modified {
			m.ModifiedAfterSent = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, schedule.ErrScheduleNotFound
	}

	shiftQuery := `
		SELECT s.employee_id, s.date, s.start_time, s.end_time
		FROM shifts s
		JOIN schedules w ON w.id = s.schedule_id
		WHERE w.store_id = $1 AND s.date >= $2 AND s.date <= $3
	`

	shiftRows, err := q.Query(ctx, shiftQuery, storeID, from, to)
	if err != nil {
		return nil, err
	}
	defer shiftRows.Close()

	for shiftRows.Next() {
		var employeeID string
		var date time.Time
		var startTime, endTime *string
		if err := shiftRows.Scan(&employeeID, &date, &startTime, &endTime); err != nil {
			return nil, err
		}
		key := timeutil.DateKey(date)
		day, ok := m.Days[key]
		if !ok {
			day = make(schedule.DaySchedule)
			m.Days[key] = day
		}
		if startTime == nil || endTime == nil {
			day[employeeID] = nil
			continue
		}
		day[employeeID] = &schedule.TimeRange{
			Start: timeutil.TruncateSeconds(*startTime),
			End:   timeutil.TruncateSeconds(*endTime),
		}
	}
	if err := shiftRows.Err(); err != nil {
		return nil, err
	}

	return &m, nil
}

// SaveMonth implements schedule.ScheduleRepository. Callers are expected to
// run it inside WithTransaction; every week overlapping the month gets its
// shifts rewritten, but the month's sent state is stamped only onto weeks
// whose Monday falls inside the month so a shared edge week never leaks one
// month's flags into its neighbor.
func (r *scheduleRepositoryImpl) SaveMonth(ctx context.Context, m *schedule.MonthSchedule) error {
	q := GetQuerier(ctx, r.db)

	weeks, month, err := weeksForYearMonth(m.YearMonth)
	if err != nil {
		return err
	}

	status := schedule.ScheduleStatusDraft
	if m.LastSentAt != nil && !m.ModifiedAfterSent {
		status = schedule.ScheduleStatusPublished
	}

	upsertOwned := `
		INSERT INTO schedules (id, store_id, week_start, status, sent_at, modified_after_sent)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (store_id, week_start) DO UPDATE
		SET status = EXCLUDED.status,
			sent_at = EXCLUDED.sent_at,
			modified_after_sent = EXCLUDED.modified_after_sent,
			updated_at = NOW()
		RETURNING id
	`

	// A shared week row keeps whatever flags its owning month wrote.
	upsertShared := `
		INSERT INTO schedules (id, store_id, week_start, status, sent_at, modified_after_sent)
		VALUES ($1, $2, $3, $4, NULL, FALSE)
		ON CONFLICT (store_id, week_start) DO UPDATE
		SET updated_at = NOW()
		RETURNING id
	`

	for _, week := range weeks {
		var scheduleID string
		if monthOwnsWeek(month, week.Start) {
			err = q.QueryRow(ctx, upsertOwned,
				uuid.New().String(), m.StoreID, week.Start, string(status), m.LastSentAt, m.ModifiedAfterSent).
				Scan(&scheduleID)
		} else {
			err = q.QueryRow(ctx, upsertShared,
				uuid.New().String(), m.StoreID, week.Start, string(schedule.ScheduleStatusDraft)).
				Scan(&scheduleID)
		}
		if err != nil {
			return fmt.Errorf("failed to upsert schedule week %s: %w", timeutil.DateKey(week.Start), err)
		}

		if _, err := q.Exec(ctx,
			`DELETE FROM shifts WHERE schedule_id = $1 AND date >= $2 AND date <= $3`,
			scheduleID, week.Start, week.End); err != nil {
			return fmt.Errorf("failed to clear shifts for week %s: %w", timeutil.DateKey(week.Start), err)
		}

		for _, date := range week.Dates {
			day, ok := m.Days[timeutil.DateKey(date)]
			if !ok {
				continue
			}
			for employeeID, tr := range day {
				var startTime, endTime *string
				if tr != nil {
					s := timeutil.ExpandSeconds(tr.Start)
					e := timeutil.ExpandSeconds(tr.End)
					startTime, endTime = &s, &e
				}
				if _, err := q.Exec(ctx,
					`INSERT INTO shifts (id, schedule_id, employee_id, date, start_time, end_time)
					 VALUES ($1, $2, $3, $4, $5, $6)`,
					uuid.New().String(), scheduleID, employeeID, date, startTime, endTime); err != nil {
					return fmt.Errorf("failed to insert shift for %s on %s: %w",
						employeeID, timeutil.DateKey(date), err)
				}
			}
		}
	}

	return nil
}

// GetShiftsByDateRange implements schedule.ScheduleRepository. Day-off rows
// are filtered out; only worked shifts come back.
func (r *scheduleRepositoryImpl) GetShiftsByDateRange(ctx context.Context, storeID string, from, to time.Time) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.schedule_id, s.employee_id, s.date, s.start_time, s.end_time
		FROM shifts s
		JOIN schedules w ON w.id = s.schedule_id
		WHERE w.store_id = $1 AND s.date >= $2 AND s.date <= $3
			AND s.start_time IS NOT NULL AND s.end_time IS NOT NULL
		ORDER BY s.date, s.employee_id
	`

	rows, err := q.Query(ctx, query, storeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		var s schedule.Shift
		if err := rows.Scan(&s.ID, &s.ScheduleID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func weeksForYearMonth(yearMonth string) ([]timeutil.Week, time.Time, error) {
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return nil, time.Time{}, schedule.ErrInvalidYearMonth
	}
	return timeutil.WeeksInMonth(t.Year(), t.Month()), t, nil
}

// monthOwnsWeek reports whether a week row's sent state belongs to the given
// month. A week spilling across a month boundary belongs to the month
// containing its Monday, so each row has exactly one owner.
func monthOwnsWeek(month time.Time, weekStart time.Time) bool {
	return weekStart.Year() == month.Year() && weekStart.Month() == month.Month()
}
