package employee

import (
	"strings"

	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
	"github.com/scon-hq/scon-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	PhoneNumber      string          `json:"phoneNumber"`
	HourlyRate       decimal.Decimal `json:"hourlyRate"`
	Role             string          `json:"role"`
	Color            string          `json:"color,omitempty"`
	ShiftPreset      string          `json:"shiftPreset,omitempty"`
	CustomShiftStart *string         `json:"customShiftStart,omitempty"`
	CustomShiftEnd   *string         `json:"customShiftEnd,omitempty"`
	PersonalHoliday  *string         `json:"personalHoliday,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if !validator.IsEmpty(r.PhoneNumber) && !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phoneNumber",
			Message: "phoneNumber must be a valid mobile number",
		})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourlyRate",
			Message: "hourlyRate must be non-negative",
		})
	}
	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: " + strings.Join(RoleValues, ", "),
		})
	}

	errs = append(errs, validateShiftFields(r.ShiftPreset, r.CustomShiftStart, r.CustomShiftEnd)...)

	if r.PersonalHoliday != nil && *r.PersonalHoliday != "" {
		if _, err := timeutil.ParseWeekday(*r.PersonalHoliday); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "personalHoliday",
				Message: "personalHoliday must be a weekday name (MONDAY..SUNDAY)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string
	Name             *string          `json:"name,omitempty"`
	Email            *string          `json:"email,omitempty"`
	PhoneNumber      *string          `json:"phoneNumber,omitempty"`
	HourlyRate       *decimal.Decimal `json:"hourlyRate,omitempty"`
	Role             *string          `json:"role,omitempty"`
	Color            *string          `json:"color,omitempty"`
	ShiftPreset      *string          `json:"shiftPreset,omitempty"`
	CustomShiftStart *string          `json:"customShiftStart,omitempty"`
	CustomShiftEnd   *string          `json:"customShiftEnd,omitempty"`
	PersonalHoliday  *string          `json:"personalHoliday,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourlyRate",
			Message: "hourlyRate must be non-negative",
		})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: " + strings.Join(RoleValues, ", "),
		})
	}
	if r.ShiftPreset != nil {
		errs = append(errs, validateShiftFields(*r.ShiftPreset, r.CustomShiftStart, r.CustomShiftEnd)...)
	}
	if r.PersonalHoliday != nil && *r.PersonalHoliday != "" {
		if _, err := timeutil.ParseWeekday(*r.PersonalHoliday); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "personalHoliday",
				Message: "personalHoliday must be a weekday name (MONDAY..SUNDAY)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateShiftFields enforces the preset invariant: custom requires both
// bounds, non-custom presets must be known names.
func validateShiftFields(preset string, customStart, customEnd *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if preset == "" {
		return nil
	}
	if !validator.IsInSlice(preset, ShiftPresetValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftPreset",
			Message: "shiftPreset must be one of: " + strings.Join(ShiftPresetValues, ", "),
		})
		return errs
	}
	if preset != string(ShiftPresetCustom) {
		return nil
	}

	if customStart == nil || validator.IsEmpty(*customStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "customShiftStart",
			Message: "customShiftStart is required for the custom preset",
		})
	} else if !validator.IsValidClockTime(*customStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "customShiftStart",
			Message: "customShiftStart must be a HH:MM time",
		})
	}
	if customEnd == nil || validator.IsEmpty(*customEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "customShiftEnd",
			Message: "customShiftEnd is required for the custom preset",
		})
	} else if !validator.IsValidClockTime(*customEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "customShiftEnd",
			Message: "customShiftEnd must be a HH:MM time",
		})
	}
	return errs
}

type EmployeeResponse struct {
	ID                string          `json:"id"`
	StoreID           string          `json:"storeId"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	PhoneNumber       string          `json:"phoneNumber"`
	HourlyRate        decimal.Decimal `json:"hourlyRate"`
	Role              string          `json:"role"`
	Color             string          `json:"color,omitempty"`
	ShiftPreset       string          `json:"shiftPreset"`
	CustomShiftStart  *string         `json:"customShiftStart,omitempty"`
	CustomShiftEnd    *string         `json:"customShiftEnd,omitempty"`
	PersonalHoliday   *string         `json:"personalHoliday,omitempty"`
	DefaultShiftStart string          `json:"defaultShiftStart"`
	DefaultShiftEnd   string          `json:"defaultShiftEnd"`
}
