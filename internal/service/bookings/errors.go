package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist or is
	// not visible to the caller. Unknown and unowned ids look identical.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrShopNotFound is returned when the owner has no shop on record.
	ErrShopNotFound = errors.New("shop not found")

	// ErrAccessDenied is returned when the caller lacks the rights for the
	// operation.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus is returned for an unknown status value or a status
	// the caller is not allowed to set.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition is returned when the lifecycle forbids moving
	// from the current status to the requested one.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)
