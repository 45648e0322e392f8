package errs

import "errors"

// Usecase-level sentinel errors. Infrastructure failures are marked with these via Mark.
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrForbidden        = errors.New("operation not permitted for this user")

	// Schedule errors
	ErrScheduleNotFound = errors.New("schedule not found")

	// Slot errors
	ErrInvalidRange = errors.New("invalid date range")
	ErrSlotNotFound = errors.New("slot not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrPublishFailed           = errors.New("event publish failed")
)
