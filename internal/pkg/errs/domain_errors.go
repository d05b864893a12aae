package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("reservation conflict")
	ErrNotReservationOwner = errors.New("reservation belongs to another user")

	// Availability errors
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// Settings errors
	ErrInvalidOperatingHours    = errors.New("invalid operating hours")
	ErrInvalidReservationPolicy = errors.New("invalid reservation policy")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
