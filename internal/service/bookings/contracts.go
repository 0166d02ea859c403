package bookings

import (
	"context"
	"time"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

// BarberBookingRepository is the barber booking storage.
type BarberBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BarberBooking, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.BarberBooking, error)
	ListByUserSince(ctx context.Context, userID int64, since time.Time) ([]*domain.BarberBooking, error)
	ListRecentNonCancelled(ctx context.Context, since time.Time) ([]*domain.BarberBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, stampDelivered bool) error
}

// LaundryBookingRepository is the laundry booking storage.
type LaundryBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.LaundryBooking, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.LaundryBooking, error)
	ListByUserSince(ctx context.Context, userID int64, since time.Time) ([]*domain.LaundryBooking, error)
	ListByShopSince(ctx context.Context, shopID int64, since time.Time) ([]*domain.LaundryBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, stampDelivered bool) error
}

// FoodOrderRepository is the food order storage.
type FoodOrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.FoodOrder, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.FoodOrder, error)
	ListByUserSince(ctx context.Context, userID int64, since time.Time) ([]*domain.FoodOrder, error)
	ListByShopNameSince(ctx context.Context, shopName string, since time.Time) ([]*domain.FoodOrder, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, stampDelivered bool) error
}

// ShopRepository resolves the shop an owner manages.
type ShopRepository interface {
	GetByOwner(ctx context.Context, ownerID int64) (*domain.Shop, error)
}

// UserRepository resolves customer profiles for owner dashboards.
type UserRepository interface {
	ProfilesByIDs(ctx context.Context, ids []int64) (map[int64]domain.CustomerProfile, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface this service needs.
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
