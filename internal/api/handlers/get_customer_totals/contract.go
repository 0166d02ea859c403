package get_customer_totals

import (
	"context"

	"github.com/haritapaliwal/campus-ease/internal/service/bookings/models"
)

type BookingsService interface {
	CustomerTotals(ctx context.Context, ownerID int64) (*models.CustomerTotalsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
