package service

import "errors"

// Failure taxonomy shared by the services. Handlers translate these into
// HTTP statuses; services never touch status codes themselves.
var (
	// Validation (user-correctable input)
	ErrMissingFields = errors.New("all fields are required")

	// Authorization gate
	ErrRequesterNotFound = errors.New("user not found")
	ErrNotAdministrator  = errors.New("you are not an administrator")

	// Registration / login / verification
	ErrInvalidMail       = errors.New("invalid mail")
	ErrEmailExists       = errors.New("user with this email already exists")
	ErrUsernameExists    = errors.New("user with this username already exists")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrIncorrectCode     = errors.New("incorrect code")

	// Missing entities
	ErrBookNotFound = errors.New("book not found")
	ErrUserNotFound = errors.New("user not found")
	ErrCodeNotFound = errors.New("verification code not found")
)
