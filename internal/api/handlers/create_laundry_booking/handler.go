package create_laundry_booking

import (
	"errors"
	"net/http"

	"github.com/haritapaliwal/campus-ease/internal/api/handlers"
	"github.com/haritapaliwal/campus-ease/internal/api/middleware"
	createBooking "github.com/haritapaliwal/campus-ease/internal/usecase/create_laundry_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgShopNotFound       = "laundry shop not found"
	msgNoValidItems       = "no valid items in request"
)

type Handler struct {
	useCase CreateLaundryBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateLaundryBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/laundry/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.FromContext(r.Context())

	var req CreateLaundryBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /laundry/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(identity.UserID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /laundry/bookings - Validation failed: user_id=%d: %v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrNoValidItems):
			h.logger.Warn("POST /laundry/bookings - No valid items: user_id=%d", identity.UserID)
			handlers.RespondBadRequest(w, msgNoValidItems)

		case errors.Is(err, createBooking.ErrShopNotFound):
			h.logger.Warn("POST /laundry/bookings - Shop not found: user_id=%d, shop_id=%d",
				identity.UserID, req.ShopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		default:
			h.logger.Error("POST /laundry/bookings - Failed to create booking: user_id=%d, error=%v",
				identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /laundry/bookings - Booking created: booking_id=%d, user_id=%d", result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
