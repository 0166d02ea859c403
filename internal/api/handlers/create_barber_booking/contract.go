package create_barber_booking

import (
	"context"

	createBooking "github.com/haritapaliwal/campus-ease/internal/usecase/create_barber_booking"
)

type CreateBarberBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
