package store

import (
	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
	"github.com/scon-hq/scon-backend-go/internal/pkg/validator"
)

type CreateStoreRequest struct {
	Name         string  `json:"name"`
	BusinessType string  `json:"businessType"`
	OpenTime     string  `json:"openTime"`  // "HH:MM" or "HH:MM:SS"
	CloseTime    string  `json:"closeTime"` // "HH:MM" or "HH:MM:SS"
	StoreHoliday *string `json:"storeHoliday,omitempty"`
}

func (r *CreateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.BusinessType) {
		errs = append(errs, validator.ValidationError{
			Field:   "businessType",
			Message: "businessType is required",
		})
	}
	if !validator.IsValidClockTime(timeutil.TruncateSeconds(r.OpenTime)) {
		errs = append(errs, validator.ValidationError{
			Field:   "openTime",
			Message: "openTime must be a HH:MM time",
		})
	}
	if !validator.IsValidClockTime(timeutil.TruncateSeconds(r.CloseTime)) {
		errs = append(errs, validator.ValidationError{
			Field:   "closeTime",
			Message: "closeTime must be a HH:MM time",
		})
	}
	if r.StoreHoliday != nil && *r.StoreHoliday != "" {
		if _, err := timeutil.ParseWeekday(*r.StoreHoliday); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "storeHoliday",
				Message: "storeHoliday must be a weekday name (MONDAY..SUNDAY)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStoreRequest struct {
	ID           string
	Name         *string `json:"name,omitempty"`
	BusinessType *string `json:"businessType,omitempty"`
	OpenTime     *string `json:"openTime,omitempty"`
	CloseTime    *string `json:"closeTime,omitempty"`
	StoreHoliday *string `json:"storeHoliday,omitempty"`
}

func (r *UpdateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.OpenTime != nil && !validator.IsValidClockTime(timeutil.TruncateSeconds(*r.OpenTime)) {
		errs = append(errs, validator.ValidationError{
			Field:   "openTime",
			Message: "openTime must be a HH:MM time",
		})
	}
	if r.CloseTime != nil && !validator.IsValidClockTime(timeutil.TruncateSeconds(*r.CloseTime)) {
		errs = append(errs, validator.ValidationError{
			Field:   "closeTime",
			Message: "closeTime must be a HH:MM time",
		})
	}
	if r.StoreHoliday != nil && *r.StoreHoliday != "" {
		if _, err := timeutil.ParseWeekday(*r.StoreHoliday); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "storeHoliday",
				Message: "storeHoliday must be a weekday name (MONDAY..SUNDAY)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StoreResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	BusinessType string  `json:"businessType"`
	OpenTime     string  `json:"openTime"`  // "HH:MM:SS" on the wire
	CloseTime    string  `json:"closeTime"` // "HH:MM:SS" on the wire
	StoreHoliday *string `json:"storeHoliday,omitempty"`
}
