package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"minjun@scon.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-03-01", "2000-12-31"}
	invalid := []string{"2024-13-01", "2024-03-32", "01-03-2024", "", "2024/03/01"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidYearMonth(t *testing.T) {
	if _, ok := IsValidYearMonth("2024-03"); !ok {
		t.Error("IsValidYearMonth(2024-03) = false, want true")
	}
	for _, s := range []string{"2024-13", "2024-03-01", "202403", ""} {
		if _, ok := IsValidYearMonth(s); ok {
			t.Errorf("IsValidYearMonth(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"24:00", "12:60", "9:30", "abc", ""}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"010-1234-5678", "01012345678", "010 2345 6789"}
	invalid := []string{"02-123-4567", "010-1234", "010-1234-56789", "abc", ""}
	for _, s := range valid {
		if !IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPhoneNumber(s) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"morning", "afternoon", "custom"}
	if !IsInSlice("morning", slice) {
		t.Error("IsInSlice(morning) = false, want true")
	}
	if IsInSlice("evening", slice) {
		t.Error("IsInSlice(evening) = true, want false")
	}
}
