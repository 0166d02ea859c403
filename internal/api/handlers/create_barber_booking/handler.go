package create_barber_booking

import (
	"errors"
	"net/http"

	"github.com/haritapaliwal/campus-ease/internal/api/handlers"
	"github.com/haritapaliwal/campus-ease/internal/api/middleware"
	createBooking "github.com/haritapaliwal/campus-ease/internal/usecase/create_barber_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgUnknownSlot        = "unknown slot"
	msgSlotBlocked        = "slot is not open for booking"
	msgSlotFull           = "slot is fully booked"
)

type Handler struct {
	useCase CreateBarberBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBarberBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/barber/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.FromContext(r.Context())

	var req CreateBarberBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barber/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity.UserID)
	if err != nil {
		h.logger.Warn("POST /barber/bookings - Failed to parse date %q: %v", req.BookingDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /barber/bookings - Validation failed: user_id=%d: %v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrUnknownSlot):
			h.logger.Warn("POST /barber/bookings - Unknown slot %q: user_id=%d", req.Slot, identity.UserID)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, createBooking.ErrSlotBlocked):
			h.logger.Warn("POST /barber/bookings - Slot blocked %q: user_id=%d", req.Slot, identity.UserID)
			handlers.RespondConflict(w, msgSlotBlocked)

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /barber/bookings - Slot full %q: user_id=%d", req.Slot, identity.UserID)
			handlers.RespondConflict(w, msgSlotFull)

		default:
			h.logger.Error("POST /barber/bookings - Failed to create booking: user_id=%d, error=%v",
				identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barber/bookings - Booking created: booking_id=%d, user_id=%d", result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
