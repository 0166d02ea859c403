package catalog

import "errors"

var (
	// ErrShopNotFound is returned when the shop or the owner's shop does
	// not exist.
	ErrShopNotFound = errors.New("shop not found")

	// ErrItemNotFound is returned when a catalog item does not exist in the
	// owner's shop.
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrAccessDenied is returned when the caller lacks the rights for the
	// operation.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected service failures.
	ErrInternal = errors.New("service: internal error")
)
