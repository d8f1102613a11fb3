package payroll

import (
	"time"

	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

// Payroll is the computed weekly pay breakdown for one employee. It is a
// derived projection: never stored as source of truth, always recomputed
// from the schedule and the employee's wage.
type Payroll struct {
	EmployeeID             string
	TotalHours             decimal.Decimal
	BasePay                decimal.Decimal
	WeeklyHolidayAllowance decimal.Decimal
	OvertimePay            decimal.Decimal
	NightPay               decimal.Decimal
	HolidayPay             decimal.Decimal
	TotalPay               decimal.Decimal
}

// WorkedShift is one concrete shift inside the week being calculated.
// Overtime and night premiums depend on per-shift times, so the calculator
// takes shifts rather than a weekly hour total.
type WorkedShift struct {
	Date  time.Time
	Range schedule.TimeRange
}

// Policy holds the labor-policy parameters of the calculation. The exact
// figures are not settled law for this product, so they are configuration
// rather than constants.
type Policy struct {
	// Minimum weekly hours before the weekly holiday allowance is owed.
	MinHoursForAllowance decimal.Decimal
	// Paid rest hours granted by the allowance at a full week.
	AllowanceDayHours decimal.Decimal
	// Weekly hours the allowance is pro-rated against.
	StandardWeekHours decimal.Decimal
	// Daily hours beyond which overtime premium applies.
	StandardDayHours decimal.Decimal

	OvertimeMultiplier decimal.Decimal
	NightMultiplier    decimal.Decimal
	HolidayMultiplier  decimal.Decimal

	// Night differential window, "HH:MM". The window wraps midnight.
	NightStart string
	NightEnd   string
}

// DefaultPolicy returns the parameters the product currently models:
// 15-hour eligibility, 8-hour standard day, 40-hour week, 1.5x overtime and
// holiday premiums, 0.5x night differential between 22:00 and 06:00.
func DefaultPolicy() Policy {
	return Policy{
		MinHoursForAllowance: decimal.NewFromInt(15),
		AllowanceDayHours:    decimal.NewFromInt(8),
		StandardWeekHours:    decimal.NewFromInt(40),
		StandardDayHours:     decimal.NewFromInt(8),
		OvertimeMultiplier:   decimal.NewFromFloat(1.5),
		NightMultiplier:      decimal.NewFromFloat(0.5),
		HolidayMultiplier:    decimal.NewFromFloat(1.5),
		NightStart:           "22:00",
		NightEnd:             "06:00",
	}
}
