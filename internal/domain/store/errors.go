package store

import "errors"

var (
	ErrStoreNotFound        = errors.New("store not found")
	ErrNotStoreOwner        = errors.New("store does not belong to this owner")
	ErrInvalidBusinessHours = errors.New("invalid business hours")
)
