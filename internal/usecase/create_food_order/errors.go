package create_food_order

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_food_order: invalid input data")

	// ErrEmptyCart is returned when the cart has no items.
	ErrEmptyCart = errors.New("create_food_order: cart is empty")

	// ErrInternal is returned for unexpected failures inside the use case.
	ErrInternal = errors.New("create_food_order: internal error")
)
