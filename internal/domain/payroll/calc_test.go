package payroll

import (
	"errors"
	"testing"
	"time"

	"github.com/scon-hq/scon-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, key string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", key)
	require.NoError(t, err)
	return parsed
}

func shift(t *testing.T, date, start, end string) WorkedShift {
	t.Helper()
	return WorkedShift{
		Date:  day(t, date),
		Range: schedule.TimeRange{Start: start, End: end},
	}
}

func assertAmount(t *testing.T, want int64, got decimal.Decimal, field string) {
	t.Helper()
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Errorf("%s = %s, want %d", field, got, want)
	}
}

func TestCalculateBasePayAndAllowance(t *testing.T) {
	// 41 hours at 10,000/h: five 8-hour days plus one extra hour.
	in := CalcInput{
		EmployeeID: "emp-1",
		HourlyRate: decimal.NewFromInt(10000),
		Shifts: []WorkedShift{
			shift(t, "2024-03-04", "10:00", "18:00"),
			shift(t, "2024-03-05", "10:00", "18:00"),
			shift(t, "2024-03-06", "10:00", "18:00"),
			shift(t, "2024-03-07", "10:00", "18:00"),
			shift(t, "2024-03-08", "10:00", "18:00"),
			shift(t, "2024-03-09", "10:00", "11:00"),
		},
	}

	got, err := Calculate(in, DefaultPolicy())
	require.NoError(t, err)

	assertAmount(t, 41, got.TotalHours, "TotalHours")
	assertAmount(t, 410000, got.BasePay, "BasePay")
	assertAmount(t, 82000, got.WeeklyHolidayAllowance, "WeeklyHolidayAllowance")
	assertAmount(t, 0, got.OvertimePay, "OvertimePay")
	assertAmount(t, 0, got.NightPay, "NightPay")
	assertAmount(t, 0, got.HolidayPay, "HolidayPay")
	assertAmount(t, 492000, got.TotalPay, "TotalPay")
}

func TestCalculateAllowanceThreshold(t *testing.T) {
	policy := DefaultPolicy()
	rate := decimal.NewFromInt(10000)

	// 14 hours: below the 15-hour eligibility threshold.
	under, err := Calculate(CalcInput{
		EmployeeID: "emp-2",
		HourlyRate: rate,
		Shifts: []WorkedShift{
			shift(t, "2024-03-04", "10:00", "17:00"),
			shift(t, "2024-03-06", "10:00", "17:00"),
		},
	}, policy)
	require.NoError(t, err)
	assertAmount(t, 0, under.WeeklyHolidayAllowance, "WeeklyHolidayAllowance")

	// Exactly 15 hours: eligible, pro-rated against a 40-hour week.
	at, err := Calculate(CalcInput{
		EmployeeID: "emp-2",
		HourlyRate: rate,
		Shifts: []WorkedShift{
			shift(t, "2024-03-04", "10:00", "17:30"),
			shift(t, "2024-03-06", "10:00", "17:30"),
		},
	}, policy)
	require.NoError(t, err)
	assertAmount(t, 30000, at.WeeklyHolidayAllowance, "WeeklyHolidayAllowance")
}

func TestCalculateOvertimeIsPerShift(t *testing.T) {
	// One 10-hour day: 2 hours over the 8-hour standard day at 1.5x.
	got, err := Calculate(CalcInput{
		EmployeeID: "emp-1",
		HourlyRate: decimal.NewFromInt(10000),
		Shifts: []WorkedShift{
			shift(t, "2024-03-04", "09:00", "19:00"),
		},
	}, DefaultPolicy())
	require.NoError(t, err)

	assertAmount(t, 100000, got.BasePay, "BasePay")
	assertAmount(t, 30000, got.OvertimePay, "OvertimePay")

	// Two 5-hour days total the same 10 hours but cross no daily
	// threshold, so no overtime is owed.
	split, err := Calculate(CalcInput{
		EmployeeID: "emp-1",
		HourlyRate: decimal.NewFromInt(10000),
		Shifts: []WorkedShift{
			shift(t, "2024-03-04", "09:00", "14:00"),
			shift(t, "2024-03-05", "09:00", "14:00"),
		},
	}, DefaultPolicy())
	require.NoError(t, err)
	assertAmount(t, 0, split.OvertimePay, "OvertimePay")
}

func TestCalculateNightDifferential(t *testing.T) {
	rate := decimal.NewFromInt(10000)

	// 20:00-23:00 covers one hour of the 22:00-06:00 window.
	evening, err := Calculate(CalcInput{
		EmployeeID: "emp-4",
		HourlyRate: rate,
		Shifts:     []WorkedShift{shift(t, "2024-03-04", "20:00", "23:00")},
	}, DefaultPolicy())
	require.NoError(t, err)
	assertAmount(t, 5000, evening.NightPay, "NightPay")

	// 18:00-22:00 touches the window boundary but covers none of it.
	boundary, err := Calculate(CalcInput{
		EmployeeID: "emp-4",
		HourlyRate: rate,
		Shifts:     []WorkedShift{shift(t, "2024-03-04", "18:00", "22:00")},
	}, DefaultPolicy())
	require.NoError(t, err)
	assertAmount(t, 0, boundary.NightPay, "NightPay")

	// A full 22:00-06:00 overnight shift is 8 hours, all of them night.
	overnight, err := Calculate(CalcInput{
		EmployeeID: "emp-4",
		HourlyRate: rate,
		Shifts:     []WorkedShift{shift(t, "2024-03-04", "22:00", "06:00")},
	}, DefaultPolicy())
	require.NoError(t, err)
	assertAmount(t, 8, overnight.TotalHours, "TotalHours")
	assertAmount(t, 80000, overnight.BasePay, "BasePay")
	assertAmount(t, 40000, overnight.NightPay, "NightPay")
	assertAmount(t, 0, overnight.OvertimePay, "OvertimePay")
}

func TestCalculateHolidayPay(t *testing.T) {
	sunday := time.Sunday
	got, err := Calculate(CalcInput{
		EmployeeID:      "emp-3",
		HourlyRate:      decimal.NewFromInt(10000),
		PersonalHoliday: &sunday,
		Shifts: []WorkedShift{
			// 2024-03-10 is a Sunday.
			shift(t, "2024-03-10", "10:00", "18:00"),
			shift(t, "2024-03-11", "10:00", "18:00"),
		},
	}, DefaultPolicy())
	require.NoError(t, err)

	assertAmount(t, 120000, got.HolidayPay, "HolidayPay")

	// The store's weekly holiday triggers the same premium.
	monday := time.Monday
	store, err := Calculate(CalcInput{
		EmployeeID:   "emp-3",
		HourlyRate:   decimal.NewFromInt(10000),
		StoreHoliday: &monday,
		Shifts: []WorkedShift{
			shift(t, "2024-03-11", "10:00", "18:00"),
		},
	}, DefaultPolicy())
	require.NoError(t, err)
	assertAmount(t, 120000, store.HolidayPay, "HolidayPay")
}

func TestCalculateIsDeterministic(t *testing.T) {
	in := CalcInput{
		EmployeeID: "emp-1",
		HourlyRate: decimal.NewFromInt(9860),
		Shifts: []WorkedShift{
			shift(t, "2024-03-04", "13:00", "21:00"),
			shift(t, "2024-03-05", "20:00", "02:00"),
		},
	}

	first, err := Calculate(in, DefaultPolicy())
	require.NoError(t, err)
	second, err := Calculate(in, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	_, err := Calculate(CalcInput{
		EmployeeID: "emp-1",
		HourlyRate: decimal.NewFromInt(-1),
	}, DefaultPolicy())
	assert.True(t, errors.Is(err, ErrInvalidRate))

	_, err = Calculate(CalcInput{
		EmployeeID: "emp-1",
		HourlyRate: decimal.NewFromInt(10000),
		Shifts:     []WorkedShift{shift(t, "2024-03-04", "25:00", "26:00")},
	}, DefaultPolicy())
	assert.True(t, errors.Is(err, ErrInvalidShift))

	badPolicy := DefaultPolicy()
	badPolicy.StandardWeekHours = decimal.Zero
	_, err = Calculate(CalcInput{
		EmployeeID: "emp-1",
		HourlyRate: decimal.NewFromInt(10000),
		Shifts:     []WorkedShift{shift(t, "2024-03-04", "10:00", "18:00")},
	}, badPolicy)
	assert.True(t, errors.Is(err, ErrInvalidHours))
}
