package create_laundry_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_laundry_booking: invalid input data")

	// ErrShopNotFound is returned when no laundry shop can be resolved.
	ErrShopNotFound = errors.New("create_laundry_booking: laundry shop not found")

	// ErrNoValidItems is returned when every requested line was dropped
	// during catalog matching.
	ErrNoValidItems = errors.New("create_laundry_booking: no valid items in request")

	// ErrInternal is returned for unexpected failures inside the use case.
	ErrInternal = errors.New("create_laundry_booking: internal error")
)
