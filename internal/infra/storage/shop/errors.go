package shop

import "errors"

var (
	// ErrShopNotFound is returned when no shop matches the lookup.
	ErrShopNotFound = errors.New("shop.repository: shop not found")

	// ErrItemNotFound is returned when a catalog item does not exist.
	ErrItemNotFound = errors.New("shop.repository: catalog item not found")

	// ErrBuildQuery is returned when building a SQL statement fails.
	ErrBuildQuery = errors.New("shop.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails.
	ErrExecQuery = errors.New("shop.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("shop.repository: failed to scan row")
)
