package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/scon-hq/scon-backend-go/internal/pkg/timeutil"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// YearMonth validation ("YYYY-MM")
func IsValidYearMonth(yearMonth string) (time.Time, bool) {
	t, err := time.Parse("2006-01", yearMonth)
	return t, err == nil
}

// Clock time validation ("HH:MM", 24-hour)
func IsValidClockTime(clock string) bool {
	return timeutil.IsValidClockTime(clock)
}

// Phone number validation (Korean mobile, e.g. "010-1234-5678")
func IsValidPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	if len(phone) < 10 || len(phone) > 11 {
		return false
	}
	if !strings.HasPrefix(phone, "01") {
		return false
	}
	return numericRegex.MatchString(phone)
}

var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
