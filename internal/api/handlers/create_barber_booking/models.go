package create_barber_booking

import (
	"time"

	"github.com/haritapaliwal/campus-ease/internal/domain"
	createBooking "github.com/haritapaliwal/campus-ease/internal/usecase/create_barber_booking"
)

// CreateBarberBookingRequest is the HTTP request model.
type CreateBarberBookingRequest struct {
	Slot        string `json:"slot"`        // "10:00 AM"
	BookingDate string `json:"bookingDate"` // "2025-10-15"
}

// BarberBookingResponse is the HTTP response model.
type BarberBookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Slot        string `json:"slot"`
	BookingDate string `json:"bookingDate"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing the booking date.
func (r *CreateBarberBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}
	return &createBooking.Request{
		UserID: userID,
		Slot:   r.Slot,
		Date:   date,
	}, nil
}

// FromUseCaseResponse converts the use case result to the HTTP response.
func FromUseCaseResponse(resp *createBooking.Response) *BarberBookingResponse {
	return &BarberBookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		Slot:        resp.Slot,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
