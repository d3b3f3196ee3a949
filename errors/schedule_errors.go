package errors

import "errors"

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrInvalidAppointmentData = errors.New("invalid appointment data")

	ErrNotificationNotFound    = errors.New("notification not found")
	ErrInvalidNotificationData = errors.New("invalid notification data")

	ErrIsgMemberNotFound    = errors.New("isg member not found")
	ErrIsgMemberConflict    = errors.New("isg member conflict")
	ErrInvalidIsgMemberData = errors.New("invalid isg member data")
)
