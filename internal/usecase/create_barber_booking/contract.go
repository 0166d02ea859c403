package create_barber_booking

import (
	"context"
	"time"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

// BookingRepository is the barber booking storage this use case writes.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.BarberBooking) (*domain.BarberBooking, error)
	// ListActiveBySlotDate locks the matching rows FOR UPDATE when called
	// inside a transaction.
	ListActiveBySlotDate(ctx context.Context, slot string, day time.Time) ([]*domain.BarberBooking, error)
}

// ShopRepository is the shop storage this use case reads.
type ShopRepository interface {
	SlotSettingsByShopType(ctx context.Context, shopType domain.ShopType) ([]domain.SlotSetting, error)
}

// TransactionManager runs a function inside a serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
