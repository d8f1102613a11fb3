package owner

import "errors"

var (
	ErrOwnerNotFound = errors.New("owner not found")
	ErrEmailExists   = errors.New("email is already registered")
)
