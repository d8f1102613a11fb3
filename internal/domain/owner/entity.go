package owner

import "time"

// Owner is the account that signs in and manages one or more stores.
type Owner struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	PhoneNumber  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
