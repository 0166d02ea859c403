package create_laundry_booking

import (
	"context"

	createBooking "github.com/haritapaliwal/campus-ease/internal/usecase/create_laundry_booking"
)

type CreateLaundryBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
