package create_laundry_booking

import (
	"context"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

// BookingRepository is the laundry booking storage this use case writes.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.LaundryBooking) (*domain.LaundryBooking, error)
}

// ShopRepository resolves the laundry shop and its item catalog.
type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
	FirstByType(ctx context.Context, shopType domain.ShopType) (*domain.Shop, error)
}

// TransactionManager runs a function inside a transaction so the booking row
// and its line items commit together.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
