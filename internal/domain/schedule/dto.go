package schedule

import (
	"fmt"

	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
	"github.com/scon-hq/scon-backend-go/internal/pkg/validator"
)

// ShiftTimes is the wire form of a single shift. Times travel as
// "HH:MM:SS" and are truncated to minute precision on ingestion.
type ShiftTimes struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DayDetail maps employee IDs to their shift for one date. A nil value
// marks the employee as explicitly off that day.
type DayDetail map[string]*ShiftTimes

// ToDaySchedule converts wire times to the internal minute-precision form.
func (d DayDetail) ToDaySchedule() DaySchedule {
	ds := make(DaySchedule, len(d))
	for employeeID, times := range d {
		if times == nil {
			ds[employeeID] = nil
			continue
		}
		ds[employeeID] = &TimeRange{
			Start: timeutil.TruncateSeconds(times.StartTime),
			End:   timeutil.TruncateSeconds(times.EndTime),
		}
	}
	return ds
}

// DetailFromDaySchedule converts the internal form back to wire times.
func DetailFromDaySchedule(ds DaySchedule) DayDetail {
	d := make(DayDetail, len(ds))
	for employeeID, tr := range ds {
		if tr == nil {
			d[employeeID] = nil
			continue
		}
		d[employeeID] = &ShiftTimes{
			StartTime: timeutil.ExpandSeconds(tr.Start),
			EndTime:   timeutil.ExpandSeconds(tr.End),
		}
	}
	return d
}

type SaveWeekRequest struct {
	StoreID   string
	YearMonth string               `json:"yearMonth"`
	Days      map[string]DayDetail `json:"days"`
}

func (r *SaveWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidYearMonth(r.YearMonth); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "yearMonth",
			Message: "yearMonth must be in YYYY-MM format",
		})
	}
	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must contain at least one date",
		})
	}
	for dateKey, detail := range r.Days {
		if _, ok := validator.IsValidDate(dateKey); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: fmt.Sprintf("%s is not a valid date", dateKey),
			})
			continue
		}
		for employeeID, times := range detail {
			if times == nil {
				continue
			}
			if !validator.IsValidClockTime(timeutil.TruncateSeconds(times.StartTime)) ||
				!validator.IsValidClockTime(timeutil.TruncateSeconds(times.EndTime)) {
				errs = append(errs, validator.ValidationError{
					Field:   "days",
					Message: fmt.Sprintf("shift for %s on %s has an invalid time", employeeID, dateKey),
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AutoFillRequest struct {
	StoreID   string
	YearMonth string `json:"yearMonth"`
}

func (r *AutoFillRequest) Validate() error {
	if _, ok := validator.IsValidYearMonth(r.YearMonth); !ok {
		return validator.ValidationErrors{{
			Field:   "yearMonth",
			Message: "yearMonth must be in YYYY-MM format",
		}}
	}
	return nil
}

type CopyPatternRequest struct {
	StoreID     string
	YearMonth   string `json:"yearMonth"`
	SourceWeek  int    `json:"sourceWeek"`
	TargetWeeks []int  `json:"targetWeeks"`
}

func (r *CopyPatternRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidYearMonth(r.YearMonth); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "yearMonth",
			Message: "yearMonth must be in YYYY-MM format",
		})
	}
	if r.SourceWeek < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "sourceWeek",
			Message: "sourceWeek must not be negative",
		})
	}
	if len(r.TargetWeeks) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "targetWeeks",
			Message: "targetWeeks must contain at least one week",
		})
	}
	for _, w := range r.TargetWeeks {
		if w < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "targetWeeks",
				Message: "targetWeeks must not contain negative indexes",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SendScheduleRequest struct {
	StoreID   string
	YearMonth string `json:"yearMonth"`
}

func (r *SendScheduleRequest) Validate() error {
	if _, ok := validator.IsValidYearMonth(r.YearMonth); !ok {
		return validator.ValidationErrors{{
			Field:   "yearMonth",
			Message: "yearMonth must be in YYYY-MM format",
		}}
	}
	return nil
}

type SetShiftRequest struct {
	StoreID    string
	EmployeeID string      `json:"employeeId"`
	Date       string      `json:"date"`
	Times      *ShiftTimes `json:"times"`
}

func (r *SetShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if r.Times != nil {
		if !validator.IsValidClockTime(timeutil.TruncateSeconds(r.Times.StartTime)) ||
			!validator.IsValidClockTime(timeutil.TruncateSeconds(r.Times.EndTime)) {
			errs = append(errs, validator.ValidationError{
				Field:   "times",
				Message: "startTime and endTime must be HH:MM times",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeleteShiftRequest struct {
	StoreID    string
	EmployeeID string
	Date       string
}

func (r *DeleteShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayResponse struct {
	Date    string    `json:"date"`
	Weekday string    `json:"weekday"`
	InMonth bool      `json:"inMonth"`
	Shifts  DayDetail `json:"shifts"`
}

type WeekResponse struct {
	Index     int           `json:"index"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Days      []DayResponse `json:"days"`
}

type MonthScheduleResponse struct {
	YearMonth         string         `json:"yearMonth"`
	Status            ScheduleStatus `json:"status"`
	LastSentAt        *string        `json:"lastSentAt"`
	ModifiedAfterSent bool           `json:"modifiedAfterSent"`
	Weeks             []WeekResponse `json:"weeks"`
}
