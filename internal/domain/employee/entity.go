package employee

import (
	"fmt"
	"time"

	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	StoreID     string
	Name        string
	Email       string
	PhoneNumber string
	HourlyRate  decimal.Decimal // whole currency units, non-negative
	Role        Role
	Color       string

	// Default shift window: a named preset, or an explicit custom window.
	// CustomShiftStart/End are only meaningful when ShiftPreset is custom.
	ShiftPreset      ShiftPreset
	CustomShiftStart *string // "HH:MM"
	CustomShiftEnd   *string // "HH:MM"

	// Weekly personal rest day; nil means none.
	PersonalHoliday *time.Weekday

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
)

var RoleValues = []string{
	string(RoleStaff),
	string(RoleManager),
}

type ShiftPreset string

const (
	ShiftPresetMorning   ShiftPreset = "morning"
	ShiftPresetAfternoon ShiftPreset = "afternoon"
	ShiftPresetCustom    ShiftPreset = "custom"
)

var ShiftPresetValues = []string{
	string(ShiftPresetMorning),
	string(ShiftPresetAfternoon),
	string(ShiftPresetCustom),
}

// Fixed preset windows. Custom shifts fall back to these bounds when a
// custom field is missing.
var presetWindows = map[ShiftPreset]schedule.TimeRange{
	ShiftPresetMorning:   {Start: "10:00", End: "18:00"},
	ShiftPresetAfternoon: {Start: "13:00", End: "21:00"},
}

const (
	customFallbackStart = "09:00"
	customFallbackEnd   = "18:00"
)

// DefaultShift resolves the employee's configured shift window. An unset
// preset defaults to morning.
func (e Employee) DefaultShift() schedule.TimeRange {
	if e.ShiftPreset == ShiftPresetCustom {
		window := schedule.TimeRange{Start: customFallbackStart, End: customFallbackEnd}
		if e.CustomShiftStart != nil && *e.CustomShiftStart != "" {
			window.Start = *e.CustomShiftStart
		}
		if e.CustomShiftEnd != nil && *e.CustomShiftEnd != "" {
			window.End = *e.CustomShiftEnd
		}
		return window
	}
	if window, ok := presetWindows[e.ShiftPreset]; ok {
		return window
	}
	return presetWindows[ShiftPresetMorning]
}

// ShiftWarningMessage is the display text shown when an assignment falls
// outside the employee's default window.
func (e Employee) ShiftWarningMessage() string {
	window := e.DefaultShift()
	return fmt.Sprintf("%s's default shift is %s~%s.", e.Name, window.Start, window.End)
}
