package create_barber_booking

import "time"

// Request carries the slot and day a student wants to book.
type Request struct {
	UserID int64
	Slot   string
	Date   time.Time
}

// Response is the created booking.
type Response struct {
	ID          int64
	UserID      int64
	Slot        string
	BookingDate time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
