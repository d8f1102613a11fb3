package payroll

import (
	"time"

	"github.com/scon-hq/scon-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type WeeklyPayrollRequest struct {
	StoreID   string
	WeekStart string // "YYYY-MM-DD", a Monday
}

func (r *WeeklyPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "storeId",
			Message: "storeId is required",
		})
	}
	start, ok := validator.IsValidDate(r.WeekStart)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "weekStart",
			Message: "weekStart must be a YYYY-MM-DD date",
		})
	} else if start.Weekday() != time.Monday {
		errs = append(errs, validator.ValidationError{
			Field:   "weekStart",
			Message: "weekStart must be a Monday",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	EmployeeID             string          `json:"employeeId"`
	EmployeeName           string          `json:"employeeName"`
	TotalHours             decimal.Decimal `json:"totalHours"`
	BasePay                decimal.Decimal `json:"basePay"`
	WeeklyHolidayAllowance decimal.Decimal `json:"weeklyHolidayAllowance"`
	OvertimePay            decimal.Decimal `json:"overtimePay"`
	NightPay               decimal.Decimal `json:"nightPay"`
	HolidayPay             decimal.Decimal `json:"holidayPay"`
	TotalPay               decimal.Decimal `json:"totalPay"`
}

// ShiftWarning flags an assignment outside an employee's default window.
// Display text only; it never drives control flow.
type ShiftWarning struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Message    string `json:"message"`
}

type WeeklyPayrollResponse struct {
	WeekStart  string            `json:"weekStart"`
	WeekEnd    string            `json:"weekEnd"`
	Payrolls   []PayrollResponse `json:"payrolls"`
	TotalHours decimal.Decimal   `json:"totalHours"`
	TotalPay   decimal.Decimal   `json:"totalPay"`
	Warnings   []ShiftWarning    `json:"warnings,omitempty"`
}
