package get_available_slots

import (
	"context"
	"time"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

// BookingRepository is the barber booking storage this use case reads.
type BookingRepository interface {
	// CountActiveBySlot returns active booking counts per slot label for one day.
	CountActiveBySlot(ctx context.Context, day time.Time) (map[string]int, error)
}

// ShopRepository is the shop storage this use case reads.
type ShopRepository interface {
	// SlotSettingsByShopType returns slot settings across all shops of the
	// type, collapsed per label: a slot is blocked if any shop blocks it.
	SlotSettingsByShopType(ctx context.Context, shopType domain.ShopType) ([]domain.SlotSetting, error)
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
