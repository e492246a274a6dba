package model

import "errors"

var (
	// ErrNotFound is returned by stores when nothing matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a user with the same email exists.
	ErrDuplicateEmail = errors.New("duplicate email")
	// ErrDuplicateExternalID is returned when the external identity is already linked.
	ErrDuplicateExternalID = errors.New("duplicate external id")
)
