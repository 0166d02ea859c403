package create_barber_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_barber_booking: invalid input data")

	// ErrUnknownSlot is returned when the slot label is not offered by any shop.
	ErrUnknownSlot = errors.New("create_barber_booking: unknown slot")

	// ErrSlotBlocked is returned when a barber shop has blocked the slot.
	ErrSlotBlocked = errors.New("create_barber_booking: slot is blocked")

	// ErrSlotFull is returned when the slot already has the maximum number
	// of active bookings for the day.
	ErrSlotFull = errors.New("create_barber_booking: slot is fully booked")

	// ErrInternal is returned for unexpected failures inside the use case.
	ErrInternal = errors.New("create_barber_booking: internal error")
)
