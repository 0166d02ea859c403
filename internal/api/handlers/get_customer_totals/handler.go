package get_customer_totals

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
	msgNotACanteen  = "customer totals are only available for canteens"
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

// Handle GET /api/v1/shops/{shopId}/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.FromContext(r.Context())
	vars := mux.Vars(r)

	shopID, err := strconv.ParseInt(vars["shopId"], 10, 64)
	if err != nil || identity.ShopID == nil || *identity.ShopID != shopID {
		h.logger.Warn("GET /shops/{shopId}/customers - Shop mismatch: owner=%d, path_shop=%q",
			identity.UserID, vars["shopId"])
		handlers.RespondForbidden(w, msgNotYourShop)
		return
	}

	result, err := h.service.CustomerTotals(r.Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrShopNotFound):
			h.logger.Warn("GET /shops/%d/customers - Shop not found: owner=%d", shopID, identity.UserID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /shops/%d/customers - Not a canteen: owner=%d", shopID, identity.UserID)
			handlers.RespondForbidden(w, msgNotACanteen)

		default:
			h.logger.Error("GET /shops/%d/customers - Failed: owner=%d, error=%v", shopID, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
