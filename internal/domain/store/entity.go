package store

import "time"

type Store struct {
	ID            string
	OwnerID       string
	Name          string
	BusinessType  string
	OpeningTime   string // "HH:MM"
	ClosingTime   string // "HH:MM"
	WeeklyHoliday *time.Weekday
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}
