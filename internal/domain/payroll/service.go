package payroll

import "context"

type PayrollService interface {
	// GetWeeklyPayroll recomputes the pay breakdown for every employee of
	// the store for one Monday-start week. Payroll is never read back from
	// storage; the schedule is the source of truth.
	GetWeeklyPayroll(ctx context.Context, req WeeklyPayrollRequest) (WeeklyPayrollResponse, error)
}
