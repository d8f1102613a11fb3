package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/scon-hq/scon-backend-go/internal/domain/employee"
	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/scon-hq/scon-backend-go/internal/domain/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScheduleRepo struct {
	month *schedule.MonthSchedule
}

func (s *stubScheduleRepo) GetMonth(ctx context.Context, storeID, yearMonth string) (*schedule.MonthSchedule, error) {
	if s.month == nil {
		return nil, schedule.ErrScheduleNotFound
	}
	m := s.month.Clone()
	return &m, nil
}

func (s *stubScheduleRepo) SaveMonth(ctx context.Context, m *schedule.MonthSchedule) error {
	clone := m.Clone()
	s.month = &clone
	return nil
}

func (s *stubScheduleRepo) GetShiftsByDateRange(ctx context.Context, storeID string, from, to time.Time) ([]schedule.Shift, error) {
	return nil, nil
}

type stubEmployeeRepo struct{}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id, storeID string) (employee.Employee, error) {
	return employee.Employee{ID: id, StoreID: storeID}, nil
}

func (s *stubEmployeeRepo) GetActiveByStoreID(ctx context.Context, storeID string) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) ExistsByEmail(ctx context.Context, storeID, email string) (bool, error) {
	return false, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, storeID string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (s *stubEmployeeRepo) SoftDelete(ctx context.Context, id, storeID string) error {
	return nil
}

type stubStoreRepo struct {
	store store.Store
}

func (s *stubStoreRepo) Create(ctx context.Context, st *store.Store) error { return nil }

func (s *stubStoreRepo) GetByID(ctx context.Context, id string) (*store.Store, error) {
	if id != s.store.ID {
		return nil, store.ErrStoreNotFound
	}
	st := s.store
	return &st, nil
}

func (s *stubStoreRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]*store.Store, error) {
	return nil, nil
}

func (s *stubStoreRepo) Update(ctx context.Context, st *store.Store) error { return nil }

func (s *stubStoreRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func authedContext(t *testing.T, ownerID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"owner_id": ownerID,
		"type":     "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *stubScheduleRepo) schedule.ScheduleService {
	return NewScheduleService(
		nil,
		repo,
		&stubEmployeeRepo{},
		&stubStoreRepo{store: store.Store{ID: "store-1", OwnerID: "owner-1"}},
	)
}

func TestGetMonthNeverViewedReturnsEmptyDraft(t *testing.T) {
	svc := newTestService(&stubScheduleRepo{})

	resp, err := svc.GetMonth(authedContext(t, "owner-1"), "store-1", "2024-03")
	require.NoError(t, err)

	assert.Equal(t, "2024-03", resp.YearMonth)
	assert.Equal(t, schedule.ScheduleStatusDraft, resp.Status)
	assert.Nil(t, resp.LastSentAt)
	assert.False(t, resp.ModifiedAfterSent)

	// March 2024 spans five Monday-start weeks, Feb 26 through Mar 31.
	require.Len(t, resp.Weeks, 5)
	assert.Equal(t, "2024-02-26", resp.Weeks[0].StartDate)
	assert.Equal(t, "2024-03-31", resp.Weeks[4].EndDate)
	for _, week := range resp.Weeks {
		assert.Len(t, week.Days, 7)
	}
	assert.False(t, resp.Weeks[0].Days[0].InMonth)
	assert.True(t, resp.Weeks[0].Days[4].InMonth)
	assert.Equal(t, "MONDAY", resp.Weeks[0].Days[0].Weekday)
}

func TestGetMonthAssemblesPersistedShifts(t *testing.T) {
	m := schedule.NewMonthSchedule("store-1", "2024-03")
	m = schedule.SetShift(m, "2024-03-05", "emp-1", &schedule.TimeRange{Start: "10:00", End: "18:00"})
	m = schedule.SetShift(m, "2024-03-05", "emp-2", nil)

	svc := newTestService(&stubScheduleRepo{month: &m})

	resp, err := svc.GetMonth(authedContext(t, "owner-1"), "store-1", "2024-03")
	require.NoError(t, err)

	// 2024-03-05 is the Tuesday of the second week.
	day := resp.Weeks[1].Days[1]
	require.Equal(t, "2024-03-05", day.Date)
	require.Contains(t, day.Shifts, "emp-1")
	require.NotNil(t, day.Shifts["emp-1"])
	assert.Equal(t, "10:00:00", day.Shifts["emp-1"].StartTime)
	assert.Equal(t, "18:00:00", day.Shifts["emp-1"].EndTime)

	require.Contains(t, day.Shifts, "emp-2")
	assert.Nil(t, day.Shifts["emp-2"])
}

func TestSaveWeekRejectsDateOutsideMonthGrid(t *testing.T) {
	svc := newTestService(&stubScheduleRepo{})

	_, err := svc.SaveWeek(authedContext(t, "owner-1"), schedule.SaveWeekRequest{
		StoreID:   "store-1",
		YearMonth: "2024-03",
		Days: map[string]schedule.DayDetail{
			"2024-07-15": {
				"emp-1": &schedule.ShiftTimes{StartTime: "10:00:00", EndTime: "18:00:00"},
			},
		},
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidDateKey)
}

func TestGetMonthRejectsForeignStore(t *testing.T) {
	svc := newTestService(&stubScheduleRepo{})

	_, err := svc.GetMonth(authedContext(t, "owner-2"), "store-1", "2024-03")
	assert.ErrorIs(t, err, store.ErrNotStoreOwner)
}

func TestGetMonthRejectsBadYearMonth(t *testing.T) {
	svc := newTestService(&stubScheduleRepo{})

	_, err := svc.GetMonth(authedContext(t, "owner-1"), "store-1", "2024-3")
	assert.ErrorIs(t, err, schedule.ErrInvalidYearMonth)
}
