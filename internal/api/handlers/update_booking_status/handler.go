package update_booking_status

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
	msgInvalidRequestBody = "invalid request body"
	msgUnknownKind        = "unknown booking kind"
	msgInvalidID          = "invalid booking id"
	msgNotYourShop        = "shop access denied"
	msgInvalidStatus      = "invalid status"
	msgInvalidTransition  = "status transition not allowed"
	msgBookingNotFound    = "booking not found"
	msgShopNotFound       = "shop not found"
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

// Handle PUT /api/v1/shops/{shopId}/{kind}/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.FromContext(r.Context())
	vars := mux.Vars(r)

	shopID, err := strconv.ParseInt(vars["shopId"], 10, 64)
	if err != nil || identity.ShopID == nil || *identity.ShopID != shopID {
		h.logger.Warn("PUT /shops/{shopId}/.../status - Shop mismatch: owner=%d, path_shop=%q",
			identity.UserID, vars["shopId"])
		handlers.RespondForbidden(w, msgNotYourShop)
		return
	}

	kind, ok := domain.ParseBookingKind(vars["kind"])
	if !ok {
		h.logger.Warn("PUT /shops/%d/.../status - Unknown kind %q: owner=%d", shopID, vars["kind"], identity.UserID)
		handlers.RespondBadRequest(w, msgUnknownKind)
		return
	}

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /shops/%d/%s/.../status - Invalid id %q: owner=%d", shopID, kind, vars["id"], identity.UserID)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shops/%d/%s/%d/status - Invalid request body: %v", shopID, kind, id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), &models.UpdateStatusRequest{
		OwnerID: identity.UserID,
		Kind:    kind,
		ID:      id,
		Status:  req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PUT /shops/%d/%s/%d/status - Invalid status %q: owner=%d",
				shopID, kind, id, req.Status, identity.UserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PUT /shops/%d/%s/%d/status - Transition to %q rejected: owner=%d",
				shopID, kind, id, req.Status, identity.UserID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /shops/%d/%s/%d/status - Booking not found: owner=%d",
				shopID, kind, id, identity.UserID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrShopNotFound):
			h.logger.Warn("PUT /shops/%d/%s/%d/status - Shop not found: owner=%d",
				shopID, kind, id, identity.UserID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PUT /shops/%d/%s/%d/status - Access denied: owner=%d",
				shopID, kind, id, identity.UserID)
			handlers.RespondForbidden(w, msgNotYourShop)

		default:
			h.logger.Error("PUT /shops/%d/%s/%d/status - Failed: owner=%d, error=%v",
				shopID, kind, id, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /shops/%d/%s/%d/status - Status set to %s: owner=%d",
		shopID, kind, id, result.Status, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
