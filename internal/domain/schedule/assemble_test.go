package schedule

import (
	"testing"
	"time"

	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangePtr(start, end string) *TimeRange {
	return &TimeRange{Start: start, End: end}
}

func TestMergeWeekDetailReplacesDatesWholesale(t *testing.T) {
	m := NewMonthSchedule("store-1", "2024-03")
	m.Days["2024-03-04"] = DaySchedule{
		"emp-1": rangePtr("10:00", "18:00"),
		"emp-2": rangePtr("13:00", "21:00"),
	}
	m.Days["2024-03-05"] = DaySchedule{
		"emp-1": rangePtr("10:00", "18:00"),
	}

	detail := map[string]DaySchedule{
		"2024-03-04": {
			"emp-1": rangePtr("09:00", "17:00"),
			// emp-2 was removed from this day upstream
		},
	}

	merged := MergeWeekDetail(m, detail)

	day := merged.Days["2024-03-04"]
	require.Len(t, day, 1, "stale employee entries must be dropped")
	assert.Equal(t, rangePtr("09:00", "17:00"), day["emp-1"])

	// Dates absent from the detail are untouched.
	assert.Equal(t, rangePtr("10:00", "18:00"), merged.Days["2024-03-05"]["emp-1"])

	// A sync is not a user edit.
	assert.False(t, merged.ModifiedAfterSent)

	// The input value is not aliased.
	assert.Equal(t, rangePtr("10:00", "18:00"), m.Days["2024-03-04"]["emp-1"])
}

func TestReplaceWeekDetailAfterSendTripsModifiedFlag(t *testing.T) {
	m := NewMonthSchedule("store-1", "2024-03")
	m.Days["2024-03-04"] = DaySchedule{"emp-1": rangePtr("10:00", "18:00")}
	m = MarkSent(m, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	require.False(t, m.ModifiedAfterSent)

	saved := ReplaceWeekDetail(m, map[string]DaySchedule{
		"2024-03-04": {"emp-1": rangePtr("09:00", "17:00")},
	})

	assert.Equal(t, rangePtr("09:00", "17:00"), saved.Days["2024-03-04"]["emp-1"])
	assert.True(t, saved.ModifiedAfterSent, "re-saving a week after sending is a modification")
	assert.NotNil(t, saved.LastSentAt)
}

func TestSetShiftSetsAndClears(t *testing.T) {
	m := NewMonthSchedule("store-1", "2024-03")

	m = SetShift(m, "2024-03-04", "emp-1", nil)
	assert.True(t, m.ModifiedAfterSent)

	r, ok := m.ShiftAt("2024-03-04", "emp-1")
	require.True(t, ok, "explicit nil must keep the cell")
	assert.Nil(t, r)

	m = SetShift(m, "2024-03-04", "emp-1", rangePtr("10:00", "18:00"))
	r, ok = m.ShiftAt("2024-03-04", "emp-1")
	require.True(t, ok)
	assert.Equal(t, rangePtr("10:00", "18:00"), r)
	assert.True(t, m.ModifiedAfterSent)
}

func TestAddEmployeesOverwrites(t *testing.T) {
	m := NewMonthSchedule("store-1", "2024-03")
	m.Days["2024-03-04"] = DaySchedule{"emp-1": rangePtr("08:00", "12:00")}

	m = AddEmployees(m, "2024-03-04", map[string]TimeRange{
		"emp-1": {Start: "10:00", End: "18:00"},
		"emp-2": {Start: "13:00", End: "21:00"},
	})

	assert.Equal(t, rangePtr("10:00", "18:00"), m.Days["2024-03-04"]["emp-1"])
	assert.Equal(t, rangePtr("13:00", "21:00"), m.Days["2024-03-04"]["emp-2"])
	assert.True(t, m.ModifiedAfterSent)
}

func monthWeeks(t *testing.T) []timeutil.Week {
	t.Helper()
	return timeutil.WeeksInMonth(2024, time.March)
}

func TestAutoFillFillsOnlyEmptyCells(t *testing.T) {
	weeks := monthWeeks(t)
	defaults := map[string]TimeRange{
		"emp-1": {Start: "10:00", End: "18:00"},
		"emp-2": {Start: "13:00", End: "21:00"},
	}

	m := NewMonthSchedule("store-1", "2024-03")
	m.Days["2024-03-04"] = DaySchedule{
		"emp-1": rangePtr("08:00", "12:00"), // user-entered, must survive
		"emp-2": nil,                        // explicit day off, must survive
	}

	filled := AutoFill(m, weeks, defaults)

	assert.Equal(t, rangePtr("08:00", "12:00"), filled.Days["2024-03-04"]["emp-1"])
	r, ok := filled.Days["2024-03-04"]["emp-2"]
	require.True(t, ok)
	assert.Nil(t, r, "explicit nil must not be overwritten")

	// Untouched cells get the defaults, across every week of the grid.
	assert.Equal(t, rangePtr("10:00", "18:00"), filled.Days["2024-03-05"]["emp-1"])
	assert.Equal(t, rangePtr("13:00", "21:00"), filled.Days["2024-02-26"]["emp-2"])
	assert.True(t, filled.ModifiedAfterSent)
}

func TestAutoFillIsIdempotent(t *testing.T) {
	weeks := monthWeeks(t)
	defaults := map[string]TimeRange{
		"emp-1": {Start: "10:00", End: "18:00"},
	}

	m := NewMonthSchedule("store-1", "2024-03")
	m.Days["2024-03-04"] = DaySchedule{"emp-1": rangePtr("08:00", "12:00")}

	once := AutoFill(m, weeks, defaults)
	twice := AutoFill(once, weeks, defaults)

	assert.Equal(t, once.Days, twice.Days)
}

func TestCopyWeekPatternOverwritesTargets(t *testing.T) {
	weeks := monthWeeks(t)
	source, target := weeks[1], weeks[2]

	m := NewMonthSchedule("store-1", "2024-03")
	sourceMonday := timeutil.DateKey(source.Dates[0])
	targetMonday := timeutil.DateKey(target.Dates[0])
	targetTuesday := timeutil.DateKey(target.Dates[1])

	m.Days[sourceMonday] = DaySchedule{"emp-1": rangePtr("10:00", "18:00")}
	m.Days[targetMonday] = DaySchedule{"emp-2": rangePtr("13:00", "21:00")}
	m.Days[targetTuesday] = DaySchedule{"emp-2": rangePtr("13:00", "21:00")}

	copied := CopyWeekPattern(m, source, []timeutil.Week{target})

	// Target Monday now holds exactly the source Monday map.
	assert.Equal(t, DaySchedule{"emp-1": rangePtr("10:00", "18:00")}, copied.Days[targetMonday])

	// Source Tuesday was empty, so target Tuesday is stamped empty too.
	assert.Empty(t, copied.Days[targetTuesday])

	assert.True(t, copied.ModifiedAfterSent)

	// The copies are independent of the source maps.
	copied.Days[targetMonday]["emp-1"].Start = "00:00"
	assert.Equal(t, "10:00", copied.Days[sourceMonday]["emp-1"].Start)
}

func TestMarkSentStateMachine(t *testing.T) {
	m := NewMonthSchedule("store-1", "2024-03")
	assert.False(t, m.ModifiedAfterSent)

	m = SetShift(m, "2024-03-04", "emp-1", rangePtr("10:00", "18:00"))
	assert.True(t, m.ModifiedAfterSent)

	sentAt := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC)
	m = MarkSent(m, sentAt)
	assert.False(t, m.ModifiedAfterSent)
	require.NotNil(t, m.LastSentAt)
	assert.Equal(t, sentAt, *m.LastSentAt)

	// Any further mutation flips the flag again.
	m = SetShift(m, "2024-03-04", "emp-1", nil)
	assert.True(t, m.ModifiedAfterSent)
}

func TestTimeRangeDurationMinutes(t *testing.T) {
	cases := []struct {
		r    TimeRange
		want int
	}{
		{TimeRange{Start: "10:00", End: "18:00"}, 480},
		{TimeRange{Start: "09:00", End: "09:00"}, 0},
		{TimeRange{Start: "22:00", End: "06:00"}, 480}, // overnight wrap
		{TimeRange{Start: "23:30", End: "00:15"}, 45},
	}
	for _, c := range cases {
		got, err := c.r.DurationMinutes()
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "duration of %v", c.r)
	}

	_, err := TimeRange{Start: "25:00", End: "26:00"}.DurationMinutes()
	assert.Error(t, err)
}
