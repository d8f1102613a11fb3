package payroll

import (
	"context"
	"sort"

	"github.com/scon-hq/scon-backend-go/internal/domain/employee"
	"github.com/scon-hq/scon-backend-go/internal/domain/payroll"
	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/scon-hq/scon-backend-go/internal/domain/store"
	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
	authservice "github.com/scon-hq/scon-backend-go/internal/service/auth"
	"github.com/shopspring/decimal"
)

type payrollServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
	storeRepo    store.StoreRepository
	policy       payroll.Policy
}

func NewPayrollService(
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	storeRepo store.StoreRepository,
	policy payroll.Policy,
) payroll.PayrollService {
	return &payrollServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
		policy:       policy,
	}
}

// GetWeeklyPayroll implements payroll.PayrollService.
func (s *payrollServiceImpl) GetWeeklyPayroll(ctx context.Context, req payroll.WeeklyPayrollRequest) (payroll.WeeklyPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.WeeklyPayrollResponse{}, err
	}

	ownerID, err := authservice.OwnerIDFromContext(ctx)
	if err != nil {
		return payroll.WeeklyPayrollResponse{}, err
	}

	st, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		return payroll.WeeklyPayrollResponse{}, err
	}
	if st.OwnerID != ownerID {
		return payroll.WeeklyPayrollResponse{}, store.ErrNotStoreOwner
	}

	weekStart, err := timeutil.ParseDateKey(req.WeekStart)
	if err != nil {
		return payroll.WeeklyPayrollResponse{}, err
	}
	weekEnd := weekStart.AddDate(0, 0, 6)

	employees, err := s.employeeRepo.GetActiveByStoreID(ctx, req.StoreID)
	if err != nil {
		return payroll.WeeklyPayrollResponse{}, err
	}

	shifts, err := s.scheduleRepo.GetShiftsByDateRange(ctx, req.StoreID, weekStart, weekEnd)
	if err != nil {
		return payroll.WeeklyPayrollResponse{}, err
	}

	shiftsByEmployee := make(map[string][]payroll.WorkedShift)
	for _, sh := range shifts {
		shiftsByEmployee[sh.EmployeeID] = append(shiftsByEmployee[sh.EmployeeID], payroll.WorkedShift{
			Date: sh.Date,
			Range: schedule.TimeRange{
				Start: timeutil.TruncateSeconds(sh.StartTime),
				End:   timeutil.TruncateSeconds(sh.EndTime),
			},
		})
	}

	response := payroll.WeeklyPayrollResponse{
		WeekStart:  timeutil.DateKey(weekStart),
		WeekEnd:    timeutil.DateKey(weekEnd),
		TotalHours: decimal.Zero,
		TotalPay:   decimal.Zero,
	}

	for _, emp := range employees {
		worked := shiftsByEmployee[emp.ID]
		if len(worked) == 0 {
			continue
		}
		sort.Slice(worked, func(i, j int) bool { return worked[i].Date.Before(worked[j].Date) })

		result, err := payroll.Calculate(payroll.CalcInput{
			EmployeeID:      emp.ID,
			HourlyRate:      emp.HourlyRate,
			Shifts:          worked,
			PersonalHoliday: emp.PersonalHoliday,
			StoreHoliday:    st.WeeklyHoliday,
		}, s.policy)
		if err != nil {
			return payroll.WeeklyPayrollResponse{}, err
		}

		response.Payrolls = append(response.Payrolls, payroll.PayrollResponse{
			EmployeeID:             emp.ID,
			EmployeeName:           emp.Name,
			TotalHours:             result.TotalHours,
			BasePay:                result.BasePay,
			WeeklyHolidayAllowance: result.WeeklyHolidayAllowance,
			OvertimePay:            result.OvertimePay,
			NightPay:               result.NightPay,
			HolidayPay:             result.HolidayPay,
			TotalPay:               result.TotalPay,
		})
		response.TotalHours = response.TotalHours.Add(result.TotalHours)
		response.TotalPay = response.TotalPay.Add(result.TotalPay)

		response.Warnings = append(response.Warnings, collectShiftWarnings(emp, worked)...)
	}

	return response, nil
}

// collectShiftWarnings flags shifts that fall outside the employee's
// default window.
func collectShiftWarnings(emp employee.Employee, worked []payroll.WorkedShift) []payroll.ShiftWarning {
	var warnings []payroll.ShiftWarning
	for _, sh := range worked {
		r := sh.Range
		if employee.IsOutsideDefaultShift(emp, &r) {
			warnings = append(warnings, payroll.ShiftWarning{
				EmployeeID: emp.ID,
				Date:       timeutil.DateKey(sh.Date),
				Message:    emp.ShiftWarningMessage(),
			})
		}
	}
	return warnings
}
