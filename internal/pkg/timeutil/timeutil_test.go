package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"10:00", 600},
		{"22:00", 1320},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := ParseMinutes(c.input)
		if err != nil {
			t.Errorf("ParseMinutes(%q) returned error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestParseMinutesRejectsMalformedInput(t *testing.T) {
	invalid := []string{"", "9:30", "24:00", "12:60", "ab:cd", "12-30", "12:", "12:30:99x"}
	for _, input := range invalid {
		if _, err := ParseMinutes(input); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("ParseMinutes(%q) = %v, want ErrInvalidTimeFormat", input, err)
		}
	}
}

func TestTruncateSeconds(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"09:00:00", "09:00"},
		{"09:00", "09:00"},
		{"22:15:30", "22:15"},
		{"bogus", "bogus"},
	}
	for _, c := range cases {
		if got := TruncateSeconds(c.input); got != c.want {
			t.Errorf("TruncateSeconds(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestExpandSeconds(t *testing.T) {
	if got := ExpandSeconds("09:00"); got != "09:00:00" {
		t.Errorf("ExpandSeconds(09:00) = %q, want 09:00:00", got)
	}
	if got := ExpandSeconds("09:00:00"); got != "09:00:00" {
		t.Errorf("ExpandSeconds(09:00:00) = %q, want 09:00:00", got)
	}
}

func TestTruncateExpandRoundTrip(t *testing.T) {
	if got := ExpandSeconds(TruncateSeconds("09:00:00")); got != "09:00:00" {
		t.Errorf("round trip = %q, want 09:00:00", got)
	}
}

func TestWeeksInMonth(t *testing.T) {
	// March 2024: the 1st is a Friday, so the first week starts on
	// Monday Feb 26 and the last ends on Sunday Mar 31.
	weeks := WeeksInMonth(2024, time.March)
	if len(weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(weeks))
	}

	first := weeks[0]
	if got := DateKey(first.Start); got != "2024-02-26" {
		t.Errorf("first week starts %s, want 2024-02-26", got)
	}
	if first.Start.Weekday() != time.Monday {
		t.Errorf("first week starts on %s, want Monday", first.Start.Weekday())
	}
	if len(first.Dates) != 7 {
		t.Errorf("week has %d dates, want 7", len(first.Dates))
	}

	last := weeks[len(weeks)-1]
	if got := DateKey(last.End); got != "2024-03-31" {
		t.Errorf("last week ends %s, want 2024-03-31", got)
	}

	for i, w := range weeks {
		if w.Index != i {
			t.Errorf("week %d has index %d", i, w.Index)
		}
		if w.End.Sub(w.Start) != 6*24*time.Hour {
			t.Errorf("week %d spans %v, want 6 days", i, w.End.Sub(w.Start))
		}
	}
}

func TestWeeksInMonthStartingOnMonday(t *testing.T) {
	// April 2024 starts on a Monday and ends on Tuesday Apr 30.
	weeks := WeeksInMonth(2024, time.April)
	if len(weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(weeks))
	}
	if got := DateKey(weeks[0].Start); got != "2024-04-01" {
		t.Errorf("first week starts %s, want 2024-04-01", got)
	}
	if got := DateKey(weeks[4].End); got != "2024-05-05" {
		t.Errorf("last week ends %s, want 2024-05-05", got)
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	day, err := ParseDateKey("2024-03-04")
	if err != nil {
		t.Fatalf("ParseDateKey: %v", err)
	}
	if got := DateKey(day); got != "2024-03-04" {
		t.Errorf("DateKey = %q, want 2024-03-04", got)
	}
	if got := YearMonth(day); got != "2024-03" {
		t.Errorf("YearMonth = %q, want 2024-03", got)
	}
}
