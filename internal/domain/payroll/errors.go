package payroll

import "errors"

var (
	ErrInvalidRate  = errors.New("hourly rate must be non-negative")
	ErrInvalidHours = errors.New("policy hours must be positive")
	ErrInvalidShift = errors.New("invalid shift time range")
)
