package get_shop_bookings

import (
	"context"

	"github.com/haritapaliwal/campus-ease/internal/service/bookings/models"
)

type BookingsService interface {
	ShopBookings(ctx context.Context, ownerID int64) (*models.ShopBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
