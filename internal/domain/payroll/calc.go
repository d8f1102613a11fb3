package payroll

import (
	"fmt"
	"time"

	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

var sixty = decimal.NewFromInt(60)

// CalcInput is everything the weekly calculation needs for one employee.
type CalcInput struct {
	EmployeeID      string
	HourlyRate      decimal.Decimal
	Shifts          []WorkedShift
	PersonalHoliday *time.Weekday
	StoreHoliday    *time.Weekday
}

// Calculate produces the weekly pay breakdown for one employee. It is pure
// and deterministic: the same input always yields the same Payroll.
//
// Base pay covers every worked hour at 1x. The weekly holiday allowance,
// overtime, night and holiday premiums are separate components summed into
// TotalPay.
func Calculate(in CalcInput, policy Policy) (Payroll, error) {
	if in.HourlyRate.IsNegative() {
		return Payroll{}, fmt.Errorf("%w: %s", ErrInvalidRate, in.HourlyRate)
	}
	// The allowance divides by the standard week, so a zero here would panic.
	if !policy.StandardWeekHours.IsPositive() || policy.StandardDayHours.IsNegative() {
		return Payroll{}, fmt.Errorf("%w: week %s, day %s",
			ErrInvalidHours, policy.StandardWeekHours, policy.StandardDayHours)
	}

	nightStart, err := timeutil.ParseMinutes(policy.NightStart)
	if err != nil {
		return Payroll{}, fmt.Errorf("night window start: %w", err)
	}
	nightEnd, err := timeutil.ParseMinutes(policy.NightEnd)
	if err != nil {
		return Payroll{}, fmt.Errorf("night window end: %w", err)
	}
	nightLen := ((nightEnd-nightStart)%minutesPerDay + minutesPerDay) % minutesPerDay

	standardDayMinutes := int(policy.StandardDayHours.Mul(sixty).IntPart())

	var totalMinutes, overtimeMinutes, nightMinutes, holidayMinutes int

	for _, shift := range in.Shifts {
		minutes, err := shift.Range.DurationMinutes()
		if err != nil {
			return Payroll{}, fmt.Errorf("%w: %v", ErrInvalidShift, err)
		}
		totalMinutes += minutes

		// Overtime is a daily threshold, so it is tracked per shift rather
		// than derived from the weekly total.
		if excess := minutes - standardDayMinutes; excess > 0 {
			overtimeMinutes += excess
		}

		nightMinutes += nightOverlapMinutes(shift.Range, nightStart, nightLen)

		if isHoliday(shift.Date, in.PersonalHoliday, in.StoreHoliday) {
			holidayMinutes += minutes
		}
	}

	rate := in.HourlyRate
	totalHours := decimal.NewFromInt(int64(totalMinutes)).Div(sixty)

	basePay := rate.Mul(totalHours).Round(0)

	allowance := decimal.Zero
	if totalHours.GreaterThanOrEqual(policy.MinHoursForAllowance) {
		allowance = rate.
			Mul(policy.AllowanceDayHours).
			Mul(totalHours).
			Div(policy.StandardWeekHours).
			Round(0)
	}

	overtimePay := payForMinutes(rate, overtimeMinutes, policy.OvertimeMultiplier)
	nightPay := payForMinutes(rate, nightMinutes, policy.NightMultiplier)
	holidayPay := payForMinutes(rate, holidayMinutes, policy.HolidayMultiplier)

	return Payroll{
		EmployeeID:             in.EmployeeID,
		TotalHours:             totalHours,
		BasePay:                basePay,
		WeeklyHolidayAllowance: allowance,
		OvertimePay:            overtimePay,
		NightPay:               nightPay,
		HolidayPay:             holidayPay,
		TotalPay: basePay.
			Add(allowance).
			Add(overtimePay).
			Add(nightPay).
			Add(holidayPay),
	}, nil
}

func payForMinutes(rate decimal.Decimal, minutes int, multiplier decimal.Decimal) decimal.Decimal {
	if minutes == 0 {
		return decimal.Zero
	}
	return rate.
		Mul(decimal.NewFromInt(int64(minutes))).
		Div(sixty).
		Mul(multiplier).
		Round(0)
}

// nightOverlapMinutes intersects a shift with the recurring night window
// and returns the covered minutes. Both the shift and the window may wrap
// midnight, so the shift is projected onto an absolute minute axis and
// checked against the night window of the previous, same and next day.
func nightOverlapMinutes(r schedule.TimeRange, nightStart, nightLen int) int {
	if nightLen == 0 {
		return 0
	}

	start, err := timeutil.ParseMinutes(r.Start)
	if err != nil {
		return 0
	}
	end, err := timeutil.ParseMinutes(r.End)
	if err != nil {
		return 0
	}
	if end < start {
		end += minutesPerDay
	}

	var covered int
	for day := -1; day <= 1; day++ {
		windowStart := day*minutesPerDay + nightStart
		covered += overlap(start, end, windowStart, windowStart+nightLen)
	}
	return covered
}

func overlap(aStart, aEnd, bStart, bEnd int) int {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)
	if end <= start {
		return 0
	}
	return end - start
}

func isHoliday(date time.Time, personal, store *time.Weekday) bool {
	if personal != nil && date.Weekday() == *personal {
		return true
	}
	if store != nil && date.Weekday() == *store {
		return true
	}
	return false
}
