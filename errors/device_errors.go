package errors

import "errors"

var (
	ErrDeviceNotFound    = errors.New("device not found")
	ErrDeviceConflict    = errors.New("device conflict")
	ErrInvalidDeviceData = errors.New("invalid device data")

	ErrMaintenanceCardNotFound    = errors.New("maintenance card not found")
	ErrInvalidMaintenanceCardData = errors.New("invalid maintenance card data")
)
