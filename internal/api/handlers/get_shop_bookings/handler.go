package get_shop_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/haritapaliwal/campus-ease/internal/api/handlers"
	"github.com/haritapaliwal/campus-ease/internal/api/middleware"
	"github.com/haritapaliwal/campus-ease/internal/service/bookings"
)

const (
	msgNotYourShop  = "shop access denied"
	msgShopNotFound = "shop not found"
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

// Handle GET /api/v1/shops/{shopId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.FromContext(r.Context())
	vars := mux.Vars(r)

	shopID, err := strconv.ParseInt(vars["shopId"], 10, 64)
	if err != nil || identity.ShopID == nil || *identity.ShopID != shopID {
		h.logger.Warn("GET /shops/{shopId}/bookings - Shop mismatch: owner=%d, path_shop=%q",
			identity.UserID, vars["shopId"])
		handlers.RespondForbidden(w, msgNotYourShop)
		return
	}

	result, err := h.service.ShopBookings(r.Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrShopNotFound):
			h.logger.Warn("GET /shops/%d/bookings - Shop not found: owner=%d", shopID, identity.UserID)
			handlers.RespondNotFound(w, msgShopNotFound)

		default:
			h.logger.Error("GET /shops/%d/bookings - Failed: owner=%d, error=%v", shopID, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
