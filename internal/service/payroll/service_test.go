package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/scon-hq/scon-backend-go/internal/domain/employee"
	"github.com/scon-hq/scon-backend-go/internal/domain/payroll"
	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/scon-hq/scon-backend-go/internal/domain/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScheduleRepo struct {
	shifts []schedule.Shift
}

func (s *stubScheduleRepo) GetMonth(ctx context.Context, storeID, yearMonth string) (*schedule.MonthSchedule, error) {
	return nil, schedule.ErrScheduleNotFound
}

func (s *stubScheduleRepo) SaveMonth(ctx context.Context, m *schedule.MonthSchedule) error {
	return nil
}

func (s *stubScheduleRepo) GetShiftsByDateRange(ctx context.Context, storeID string, from, to time.Time) ([]schedule.Shift, error) {
	var out []schedule.Shift
	for _, sh := range s.shifts {
		if !sh.Date.Before(from) && !sh.Date.After(to) {
			out = append(out, sh)
		}
	}
	return out, nil
}

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id, storeID string) (employee.Employee, error) {
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetActiveByStoreID(ctx context.Context, storeID string) ([]employee.Employee, error) {
	return s.employees, nil
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
	st := s.store
	return []*store.Store{&st}, nil
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

func mondayShift(day, start, end string) schedule.Shift {
	date, _ := time.Parse("2006-01-02", day)
	return schedule.Shift{
		EmployeeID: "emp-1",
		Date:       date,
		StartTime:  start,
		EndTime:    end,
	}
}

func TestGetWeeklyPayroll(t *testing.T) {
	testStore := store.Store{ID: "store-1", OwnerID: "owner-1"}
	testEmployee := employee.Employee{
		ID:          "emp-1",
		StoreID:     "store-1",
		Name:        "김민준",
		HourlyRate:  decimal.NewFromInt(10000),
		ShiftPreset: employee.ShiftPresetMorning,
	}

	// Week of 2024-03-04: five 8-hour days plus one extra hour Friday.
	shifts := []schedule.Shift{
		mondayShift("2024-03-04", "10:00:00", "18:00:00"),
		mondayShift("2024-03-05", "10:00:00", "18:00:00"),
		mondayShift("2024-03-06", "10:00:00", "18:00:00"),
		mondayShift("2024-03-07", "10:00:00", "18:00:00"),
		mondayShift("2024-03-08", "09:00:00", "18:00:00"),
	}

	svc := NewPayrollService(
		&stubScheduleRepo{shifts: shifts},
		&stubEmployeeRepo{employees: []employee.Employee{testEmployee}},
		&stubStoreRepo{store: testStore},
		payroll.DefaultPolicy(),
	)

	ctx := authedContext(t, "owner-1")
	resp, err := svc.GetWeeklyPayroll(ctx, payroll.WeeklyPayrollRequest{
		StoreID:   "store-1",
		WeekStart: "2024-03-04",
	})
	require.NoError(t, err)

	require.Len(t, resp.Payrolls, 1)
	p := resp.Payrolls[0]
	assert.Equal(t, "emp-1", p.EmployeeID)
	assert.True(t, p.TotalHours.Equal(decimal.NewFromInt(41)), "TotalHours = %s", p.TotalHours)
	assert.True(t, p.BasePay.Equal(decimal.NewFromInt(410000)), "BasePay = %s", p.BasePay)
	assert.True(t, p.WeeklyHolidayAllowance.Equal(decimal.NewFromInt(82000)),
		"WeeklyHolidayAllowance = %s", p.WeeklyHolidayAllowance)
	assert.True(t, p.OvertimePay.Equal(decimal.NewFromInt(15000)), "OvertimePay = %s", p.OvertimePay)
	assert.True(t, resp.TotalPay.Equal(p.TotalPay))

	// Friday 09:00 start is outside the 10:00 morning window.
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "2024-03-08", resp.Warnings[0].Date)
	assert.Contains(t, resp.Warnings[0].Message, "김민준")
}

func TestGetWeeklyPayrollRejectsNonMonday(t *testing.T) {
	svc := NewPayrollService(
		&stubScheduleRepo{},
		&stubEmployeeRepo{},
		&stubStoreRepo{store: store.Store{ID: "store-1", OwnerID: "owner-1"}},
		payroll.DefaultPolicy(),
	)

	ctx := authedContext(t, "owner-1")
	_, err := svc.GetWeeklyPayroll(ctx, payroll.WeeklyPayrollRequest{
		StoreID:   "store-1",
		WeekStart: "2024-03-05",
	})
	assert.Error(t, err)
}

func TestGetWeeklyPayrollForbidsOtherOwner(t *testing.T) {
	svc := NewPayrollService(
		&stubScheduleRepo{},
		&stubEmployeeRepo{},
		&stubStoreRepo{store: store.Store{ID: "store-1", OwnerID: "owner-1"}},
		payroll.DefaultPolicy(),
	)

	ctx := authedContext(t, "owner-2")
	_, err := svc.GetWeeklyPayroll(ctx, payroll.WeeklyPayrollRequest{
		StoreID:   "store-1",
		WeekStart: "2024-03-04",
	})
	assert.ErrorIs(t, err, store.ErrNotStoreOwner)
}

func TestGetWeeklyPayrollSkipsEmployeesWithoutShifts(t *testing.T) {
	idle := employee.Employee{
		ID:         "emp-2",
		StoreID:    "store-1",
		Name:       "이서연",
		HourlyRate: decimal.NewFromInt(12000),
	}

	svc := NewPayrollService(
		&stubScheduleRepo{},
		&stubEmployeeRepo{employees: []employee.Employee{idle}},
		&stubStoreRepo{store: store.Store{ID: "store-1", OwnerID: "owner-1"}},
		payroll.DefaultPolicy(),
	)

	ctx := authedContext(t, "owner-1")
	resp, err := svc.GetWeeklyPayroll(ctx, payroll.WeeklyPayrollRequest{
		StoreID:   "store-1",
		WeekStart: "2024-03-04",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Payrolls)
	assert.True(t, resp.TotalPay.Equal(decimal.Zero))
}
