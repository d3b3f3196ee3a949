package errors

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserConflict    = errors.New("user conflict")
	ErrInvalidUserData = errors.New("invalid user data")

	ErrInstitutionNotFound    = errors.New("institution not found")
	ErrInvalidInstitutionData = errors.New("invalid institution data")
)
