package schedule

import "context"

type ScheduleService interface {
	GetMonth(ctx context.Context, storeID, yearMonth string) (MonthScheduleResponse, error)
	SaveWeek(ctx context.Context, req SaveWeekRequest) (MonthScheduleResponse, error)
	AutoFill(ctx context.Context, req AutoFillRequest) (MonthScheduleResponse, error)
	CopyPattern(ctx context.Context, req CopyPatternRequest) (MonthScheduleResponse, error)
	Send(ctx context.Context, req SendScheduleRequest) (MonthScheduleResponse, error)
	SetShift(ctx context.Context, req SetShiftRequest) (MonthScheduleResponse, error)
	DeleteShift(ctx context.Context, req DeleteShiftRequest) (MonthScheduleResponse, error)
}
