package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/haritapaliwal/campus-ease/internal/api/handlers"
	"github.com/haritapaliwal/campus-ease/internal/api/middleware"
	"github.com/haritapaliwal/campus-ease/internal/domain"
	"github.com/haritapaliwal/campus-ease/internal/service/bookings"
	"github.com/haritapaliwal/campus-ease/internal/service/bookings/models"
)

const (
	msgUnknownKind     = "unknown booking kind"
	msgInvalidID       = "invalid booking id"
	msgBookingNotFound = "booking not found"
	msgCannotCancel    = "booking can no longer be cancelled"
)

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

// Handle DELETE /api/v1/{kind}/bookings/{id}
//
// Only the booking's own user can cancel it; other users' bookings read as
// not found. The row stays in place with status cancelled.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.FromContext(r.Context())
	vars := mux.Vars(r)

	kind, ok := domain.ParseBookingKind(vars["kind"])
	if !ok {
		h.logger.Warn("DELETE /bookings - Unknown kind %q: user_id=%d", vars["kind"], identity.UserID)
		handlers.RespondBadRequest(w, msgUnknownKind)
		return
	}

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /%s/bookings - Invalid id %q: user_id=%d", kind, vars["id"], identity.UserID)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	err = h.service.Cancel(r.Context(), &models.CancelRequest{
		UserID: identity.UserID,
		Kind:   kind,
		ID:     id,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /%s/bookings - Not found: booking_id=%d, user_id=%d", kind, id, identity.UserID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("DELETE /%s/bookings - Cannot cancel: booking_id=%d, user_id=%d", kind, id, identity.UserID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("DELETE /%s/bookings - Failed to cancel: booking_id=%d, user_id=%d, error=%v",
				kind, id, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /%s/bookings - Cancelled: booking_id=%d, user_id=%d", kind, id, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, models.StatusResponse{
		ID:     id,
		Kind:   string(kind),
		Status: string(domain.StatusCancelled),
	})
}
