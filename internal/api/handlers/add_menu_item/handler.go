package add_menu_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/haritapaliwal/campus-ease/internal/api/handlers"
	"github.com/haritapaliwal/campus-ease/internal/api/middleware"
	"github.com/haritapaliwal/campus-ease/internal/service/catalog"
	"github.com/haritapaliwal/campus-ease/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotYourShop        = "shop access denied"
	msgShopNotFound       = "shop not found"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopId}/menu
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.FromContext(r.Context())
	vars := mux.Vars(r)

	shopID, err := strconv.ParseInt(vars["shopId"], 10, 64)
	if err != nil || identity.ShopID == nil || *identity.ShopID != shopID {
		h.logger.Warn("POST /shops/{shopId}/menu - Shop mismatch: owner=%d, path_shop=%q",
			identity.UserID, vars["shopId"])
		handlers.RespondForbidden(w, msgNotYourShop)
		return
	}

	var req AddMenuItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/%d/menu - Invalid request body: %v", shopID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddMenuItem(r.Context(), &models.AddMenuItemRequest{
		OwnerID: identity.UserID,
		Item:    req.Item,
		Price:   req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /shops/%d/menu - Validation failed: owner=%d: %v", shopID, identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, catalog.ErrShopNotFound):
			h.logger.Warn("POST /shops/%d/menu - Shop not found: owner=%d", shopID, identity.UserID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("POST /shops/%d/menu - Access denied: owner=%d", shopID, identity.UserID)
			handlers.RespondForbidden(w, msgNotYourShop)

		default:
			h.logger.Error("POST /shops/%d/menu - Failed: owner=%d, error=%v", shopID, identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/%d/menu - Item added: item_id=%d, owner=%d", shopID, result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
