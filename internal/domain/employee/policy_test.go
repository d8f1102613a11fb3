package employee

import (
	"testing"

	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
)

func strPtr(s string) *string { return &s }

func TestDefaultShiftPresets(t *testing.T) {
	cases := []struct {
		name string
		emp  Employee
		want schedule.TimeRange
	}{
		{
			name: "morning preset",
			emp:  Employee{ShiftPreset: ShiftPresetMorning},
			want: schedule.TimeRange{Start: "10:00", End: "18:00"},
		},
		{
			name: "afternoon preset",
			emp:  Employee{ShiftPreset: ShiftPresetAfternoon},
			want: schedule.TimeRange{Start: "13:00", End: "21:00"},
		},
		{
			name: "unset preset falls back to morning",
			emp:  Employee{},
			want: schedule.TimeRange{Start: "10:00", End: "18:00"},
		},
		{
			name: "morning preset ignores custom fields",
			emp: Employee{
				ShiftPreset:      ShiftPresetMorning,
				CustomShiftStart: strPtr("06:00"),
				CustomShiftEnd:   strPtr("12:00"),
			},
			want: schedule.TimeRange{Start: "10:00", End: "18:00"},
		},
		{
			name: "custom preset",
			emp: Employee{
				ShiftPreset:      ShiftPresetCustom,
				CustomShiftStart: strPtr("18:00"),
				CustomShiftEnd:   strPtr("22:00"),
			},
			want: schedule.TimeRange{Start: "18:00", End: "22:00"},
		},
		{
			name: "custom preset with missing fields uses fallbacks",
			emp:  Employee{ShiftPreset: ShiftPresetCustom},
			want: schedule.TimeRange{Start: "09:00", End: "18:00"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.emp.DefaultShift(); got != c.want {
				t.Errorf("DefaultShift() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIsOutsideDefaultShift(t *testing.T) {
	emp := Employee{
		Name:        "김민준",
		ShiftPreset: ShiftPresetMorning, // 10:00-18:00
	}

	if IsOutsideDefaultShift(emp, nil) {
		t.Error("nil assignment must never be a violation")
	}

	cases := []struct {
		name     string
		assigned schedule.TimeRange
		want     bool
	}{
		{"inside window", schedule.TimeRange{Start: "10:00", End: "18:00"}, false},
		{"strictly inside", schedule.TimeRange{Start: "11:00", End: "17:00"}, false},
		{"starts earlier", schedule.TimeRange{Start: "08:00", End: "18:00"}, true},
		{"ends later", schedule.TimeRange{Start: "10:00", End: "19:00"}, true},
		{"both outside", schedule.TimeRange{Start: "09:00", End: "22:00"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assigned := c.assigned
			if got := IsOutsideDefaultShift(emp, &assigned); got != c.want {
				t.Errorf("IsOutsideDefaultShift(%v) = %v, want %v", c.assigned, got, c.want)
			}
		})
	}
}

func TestShiftWarningMessage(t *testing.T) {
	emp := Employee{Name: "이서연", ShiftPreset: ShiftPresetAfternoon}
	got := emp.ShiftWarningMessage()
	want := "이서연's default shift is 13:00~21:00."
	if got != want {
		t.Errorf("ShiftWarningMessage() = %q, want %q", got, want)
	}
}
