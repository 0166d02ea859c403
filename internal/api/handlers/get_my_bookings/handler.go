package get_my_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/haritapaliwal/campus-ease/internal/api/handlers"
	"github.com/haritapaliwal/campus-ease/internal/api/middleware"
	"github.com/haritapaliwal/campus-ease/internal/domain"
	"github.com/haritapaliwal/campus-ease/internal/service/bookings/models"
)

const msgUnknownKind = "unknown booking kind"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/{kind}/my-bookings
//
// Returns the caller's recent records of the requested kind only; the
// service computes all three collections over the same window.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.FromContext(r.Context())

	kind, ok := domain.ParseBookingKind(mux.Vars(r)["kind"])
	if !ok {
		h.logger.Warn("GET /my-bookings - Unknown kind %q: user_id=%d", mux.Vars(r)["kind"], identity.UserID)
		handlers.RespondBadRequest(w, msgUnknownKind)
		return
	}

	result, err := h.service.MyBookings(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("GET /%s/my-bookings - Failed to list bookings: user_id=%d, error=%v",
			kind, identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	switch kind {
	case domain.KindFood:
		handlers.RespondJSON(w, http.StatusOK, struct {
			FoodOrders []models.FoodOrderResponse `json:"foodOrders"`
		}{result.FoodOrders})
	case domain.KindBarber:
		handlers.RespondJSON(w, http.StatusOK, struct {
			BarberBookings []models.BarberBookingResponse `json:"barberBookings"`
		}{result.BarberBookings})
	case domain.KindLaundry:
		handlers.RespondJSON(w, http.StatusOK, struct {
			LaundryBookings []models.LaundryBookingResponse `json:"laundryBookings"`
		}{result.LaundryBookings})
	}
}
