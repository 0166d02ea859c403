package manage_laundry_catalog

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
	msgInvalidItemID      = "invalid item id"
	msgNotYourShop        = "shop access denied"
	msgShopNotFound       = "shop not found"
	msgItemNotFound       = "catalog item not found"
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

// HandleAdd POST /api/v1/shops/{shopId}/laundry/catalog
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	identity, shopID, ok := h.guardShop(w, r)
	if !ok {
		return
	}

	var req AddLaundryItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/%d/laundry/catalog - Invalid request body: %v", shopID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddLaundryItem(r.Context(), &models.AddLaundryItemRequest{
		OwnerID:  identity.UserID,
		Category: req.Category,
		Name:     req.Name,
		Price:    req.Price,
	})
	if err != nil {
		h.respondServiceError(w, "POST /shops/{shopId}/laundry/catalog", shopID, identity.UserID, err)
		return
	}

	h.logger.Info("POST /shops/%d/laundry/catalog - Item added: item_id=%d, owner=%d",
		shopID, result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/shops/{shopId}/laundry/catalog/{itemId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	identity, shopID, ok := h.guardShop(w, r)
	if !ok {
		return
	}

	itemID, err := strconv.ParseInt(mux.Vars(r)["itemId"], 10, 64)
	if err != nil || itemID <= 0 {
		h.logger.Warn("PUT /shops/%d/laundry/catalog - Invalid item id %q", shopID, mux.Vars(r)["itemId"])
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req UpdateLaundryItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shops/%d/laundry/catalog/%d - Invalid request body: %v", shopID, itemID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateLaundryItem(r.Context(), &models.UpdateLaundryItemRequest{
		OwnerID: identity.UserID,
		ItemID:  itemID,
		Name:    req.Name,
		Price:   req.Price,
	})
	if err != nil {
		h.respondServiceError(w, "PUT /shops/{shopId}/laundry/catalog/{itemId}", shopID, identity.UserID, err)
		return
	}

	h.logger.Info("PUT /shops/%d/laundry/catalog/%d - Item updated: owner=%d", shopID, itemID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/shops/{shopId}/laundry/catalog/{itemId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	identity, shopID, ok := h.guardShop(w, r)
	if !ok {
		return
	}

	itemID, err := strconv.ParseInt(mux.Vars(r)["itemId"], 10, 64)
	if err != nil || itemID <= 0 {
		h.logger.Warn("DELETE /shops/%d/laundry/catalog - Invalid item id %q", shopID, mux.Vars(r)["itemId"])
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	err = h.service.DeleteLaundryItem(r.Context(), &models.DeleteLaundryItemRequest{
		OwnerID: identity.UserID,
		ItemID:  itemID,
	})
	if err != nil {
		h.respondServiceError(w, "DELETE /shops/{shopId}/laundry/catalog/{itemId}", shopID, identity.UserID, err)
		return
	}

	h.logger.Info("DELETE /shops/%d/laundry/catalog/%d - Item removed: owner=%d", shopID, itemID, identity.UserID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) guardShop(w http.ResponseWriter, r *http.Request) (middleware.Identity, int64, bool) {
	identity, _ := middleware.FromContext(r.Context())
	raw := mux.Vars(r)["shopId"]

	shopID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || identity.ShopID == nil || *identity.ShopID != shopID {
		h.logger.Warn("laundry catalog - Shop mismatch: owner=%d, path_shop=%q", identity.UserID, raw)
		handlers.RespondForbidden(w, msgNotYourShop)
		return identity, 0, false
	}
	return identity, shopID, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, shopID, ownerID int64, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Validation failed: shop=%d, owner=%d: %v", route, shopID, ownerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	case errors.Is(err, catalog.ErrItemNotFound):
		h.logger.Warn("%s - Item not found: shop=%d, owner=%d", route, shopID, ownerID)
		handlers.RespondNotFound(w, msgItemNotFound)

	case errors.Is(err, catalog.ErrShopNotFound):
		h.logger.Warn("%s - Shop not found: shop=%d, owner=%d", route, shopID, ownerID)
		handlers.RespondNotFound(w, msgShopNotFound)

	case errors.Is(err, catalog.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: shop=%d, owner=%d", route, shopID, ownerID)
		handlers.RespondForbidden(w, msgNotYourShop)

	default:
		h.logger.Error("%s - Failed: shop=%d, owner=%d, error=%v", route, shopID, ownerID, err)
		handlers.RespondInternalError(w)
	}
}
