package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/scon-hq/scon-backend-go/internal/domain/employee"
	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/scon-hq/scon-backend-go/internal/domain/store"
	"github.com/scon-hq/scon-backend-go/internal/pkg/database"
	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
	"github.com/scon-hq/scon-backend-go/internal/repository/postgresql"
	authservice "github.com/scon-hq/scon-backend-go/internal/service/auth"
)

type scheduleServiceImpl struct {
	db           *database.DB
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
	storeRepo    store.StoreRepository
}

func NewScheduleService(
	db *database.DB,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	storeRepo store.StoreRepository,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		db:           db,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
	}
}

// GetMonth implements schedule.ScheduleService. A month never viewed before
// comes back as an empty draft calendar.
func (s *scheduleServiceImpl) GetMonth(ctx context.Context, storeID, yearMonth string) (schedule.MonthScheduleResponse, error) {
	if err := s.verifyStoreAccess(ctx, storeID); err != nil {
		return schedule.MonthScheduleResponse{}, err
	}

	m, weeks, err := s.loadMonth(ctx, storeID, yearMonth)
	if err != nil {
		return schedule.MonthScheduleResponse{}, err
	}
	return mapMonthToResponse(m, weeks), nil
}

// SaveWeek implements schedule.ScheduleService. Every date present in the
// request replaces that date's assignments wholesale, and the save counts
// as a modification for the sent-schedule warning. Dates outside the
// month's calendar grid are rejected rather than silently dropped.
func (s *scheduleServiceImpl) SaveWeek(ctx context.Context, req schedule.SaveWeekRequest) (schedule.MonthScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.MonthScheduleResponse{}, err
	}

	t, err := time.Parse("2006-01", req.YearMonth)
	if err != nil {
		return schedule.MonthScheduleResponse{}, schedule.ErrInvalidYearMonth
	}
	grid := timeutil.WeeksInMonth(t.Year(), t.Month())
	for dateKey := range req.Days {
		date, err := timeutil.ParseDateKey(dateKey)
		if err != nil || !weekGridContains(grid, date) {
			return schedule.MonthScheduleResponse{}, schedule.ErrInvalidDateKey
		}
	}

	return s.mutateMonth(ctx, req.StoreID, req.YearMonth, func(m schedule.MonthSchedule, _ []timeutil.Week) (schedule.MonthSchedule, error) {
		detail := make(map[string]schedule.DaySchedule, len(req.Days))
		for dateKey, dayDetail := range req.Days {
			detail[dateKey] = dayDetail.ToDaySchedule()
		}
		return schedule.ReplaceWeekDetail(m, detail), nil
	})
}

// AutoFill implements schedule.ScheduleService.
func (s *scheduleServiceImpl) AutoFill(ctx context.Context, req schedule.AutoFillRequest) (schedule.MonthScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.MonthScheduleResponse{}, err
	}

	employees, err := s.employeeRepo.GetActiveByStoreID(ctx, req.StoreID)
	if err != nil {
		return schedule.MonthScheduleResponse{}, err
	}
	defaults := make(map[string]schedule.TimeRange, len(employees))
	for _, emp := range employees {
		defaults[emp.ID] = emp.DefaultShift()
	}

	return s.mutateMonth(ctx, req.StoreID, req.YearMonth, func(m schedule.MonthSchedule, weeks []timeutil.Week) (schedule.MonthSchedule, error) {
		return schedule.AutoFill(m, weeks, defaults), nil
	})
}

// CopyPattern implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CopyPattern(ctx context.Context, req schedule.CopyPatternRequest) (schedule.MonthScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.MonthScheduleResponse{}, err
	}

	return s.mutateMonth(ctx, req.StoreID, req.YearMonth, func(m schedule.MonthSchedule, weeks []timeutil.Week) (schedule.MonthSchedule, error) {
		if req.SourceWeek >= len(weeks) {
			return m, schedule.ErrWeekOutOfRange
		}
		targets := make([]timeutil.Week, 0, len(req.TargetWeeks))
		for _, idx := range req.TargetWeeks {
			if idx >= len(weeks) {
				return m, schedule.ErrWeekOutOfRange
			}
			if idx == req.SourceWeek {
				continue
			}
			targets = append(targets, weeks[idx])
		}
		return schedule.CopyWeekPattern(m, weeks[req.SourceWeek], targets), nil
	})
}

// Send implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Send(ctx context.Context, req schedule.SendScheduleRequest) (schedule.MonthScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.MonthScheduleResponse{}, err
	}

	return s.mutateMonth(ctx, req.StoreID, req.YearMonth, func(m schedule.MonthSchedule, _ []timeutil.Week) (schedule.MonthSchedule, error) {
		return schedule.MarkSent(m, time.Now()), nil
	})
}

// SetShift implements schedule.ScheduleService. A nil Times records an
// explicit day off so auto-fill will not resurrect the cell.
func (s *scheduleServiceImpl) SetShift(ctx context.Context, req schedule.SetShiftRequest) (schedule.MonthScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.MonthScheduleResponse{}, err
	}

	date, err := timeutil.ParseDateKey(req.Date)
	if err != nil {
		return schedule.MonthScheduleResponse{}, schedule.ErrInvalidDateKey
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.StoreID); err != nil {
		return schedule.MonthScheduleResponse{}, err
	}

	var r *schedule.TimeRange
	if req.Times != nil {
		r = &schedule.TimeRange{
			Start: timeutil.TruncateSeconds(req.Times.StartTime),
			End:   timeutil.TruncateSeconds(req.Times.EndTime),
		}
		if err := r.Validate(); err != nil {
			return schedule.MonthScheduleResponse{}, err
		}
	}

	return s.mutateMonth(ctx, req.StoreID, timeutil.YearMonth(date), func(m schedule.MonthSchedule, _ []timeutil.Week) (schedule.MonthSchedule, error) {
		return schedule.SetShift(m, req.Date, req.EmployeeID, r), nil
	})
}

// DeleteShift implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteShift(ctx context.Context, req schedule.DeleteShiftRequest) (schedule.MonthScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.MonthScheduleResponse{}, err
	}

	date, err := timeutil.ParseDateKey(req.Date)
	if err != nil {
		return schedule.MonthScheduleResponse{}, schedule.ErrInvalidDateKey
	}

	return s.mutateMonth(ctx, req.StoreID, timeutil.YearMonth(date), func(m schedule.MonthSchedule, _ []timeutil.Week) (schedule.MonthSchedule, error) {
		if _, ok := m.ShiftAt(req.Date, req.EmployeeID); !ok {
			return m, schedule.ErrShiftNotFound
		}
		return schedule.SetShift(m, req.Date, req.EmployeeID, nil), nil
	})
}

// loadMonth fetches the persisted calendar, falling back to an empty one.
func (s *scheduleServiceImpl) loadMonth(ctx context.Context, storeID, yearMonth string) (schedule.MonthSchedule, []timeutil.Week, error) {
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return schedule.MonthSchedule{}, nil, schedule.ErrInvalidYearMonth
	}
	weeks := timeutil.WeeksInMonth(t.Year(), t.Month())

	m, err := s.scheduleRepo.GetMonth(ctx, storeID, yearMonth)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			empty := schedule.NewMonthSchedule(storeID, yearMonth)
			return empty, weeks, nil
		}
		return schedule.MonthSchedule{}, nil, err
	}
	return *m, weeks, nil
}

// mutateMonth runs one load-apply-save cycle inside a transaction.
func (s *scheduleServiceImpl) mutateMonth(
	ctx context.Context,
	storeID, yearMonth string,
	apply func(m schedule.MonthSchedule, weeks []timeutil.Week) (schedule.MonthSchedule, error),
) (schedule.MonthScheduleResponse, error) {
	if err := s.verifyStoreAccess(ctx, storeID); err != nil {
		return schedule.MonthScheduleResponse{}, err
	}

	var response schedule.MonthScheduleResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		m, weeks, err := s.loadMonth(txCtx, storeID, yearMonth)
		if err != nil {
			return err
		}

		updated, err := apply(m, weeks)
		if err != nil {
			return err
		}

		if err := s.scheduleRepo.SaveMonth(txCtx, &updated); err != nil {
			return fmt.Errorf("failed to save schedule: %w", err)
		}

		response = mapMonthToResponse(updated, weeks)
		return nil
	})
	if err != nil {
		return schedule.MonthScheduleResponse{}, err
	}
	return response, nil
}

func weekGridContains(weeks []timeutil.Week, date time.Time) bool {
	for _, week := range weeks {
		if week.Contains(date) {
			return true
		}
	}
	return false
}

func (s *scheduleServiceImpl) verifyStoreAccess(ctx context.Context, storeID string) error {
	ownerID, err := authservice.OwnerIDFromContext(ctx)
	if err != nil {
		return err
	}

	st, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if st.OwnerID != ownerID {
		return store.ErrNotStoreOwner
	}
	return nil
}

func mapMonthToResponse(m schedule.MonthSchedule, weeks []timeutil.Week) schedule.MonthScheduleResponse {
	t, _ := time.Parse("2006-01", m.YearMonth)
	month := t.Month()

	status := schedule.ScheduleStatusDraft
	if m.LastSentAt != nil && !m.ModifiedAfterSent {
		status = schedule.ScheduleStatusPublished
	}

	var lastSentAt *string
	if m.LastSentAt != nil {
		formatted := m.LastSentAt.UTC().Format(time.RFC3339)
		lastSentAt = &formatted
	}

	weekResponses := make([]schedule.WeekResponse, 0, len(weeks))
	for _, week := range weeks {
		days := make([]schedule.DayResponse, 0, len(week.Dates))
		for _, date := range week.Dates {
			key := timeutil.DateKey(date)
			shifts := schedule.DetailFromDaySchedule(m.Days[key])
			days = append(days, schedule.DayResponse{
				Date:    key,
				Weekday: timeutil.WeekdayName(date.Weekday()),
				InMonth: date.Month() == month,
				Shifts:  shifts,
			})
		}
		weekResponses = append(weekResponses, schedule.WeekResponse{
			Index:     week.Index,
			StartDate: timeutil.DateKey(week.Start),
			EndDate:   timeutil.DateKey(week.End),
			Days:      days,
		})
	}

	return schedule.MonthScheduleResponse{
		YearMonth:         m.YearMonth,
		Status:            status,
		LastSentAt:        lastSentAt,
		ModifiedAfterSent: m.ModifiedAfterSent,
		Weeks:             weekResponses,
	}
}
