package manage_slots

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
	msgInvalidSlotLabel   = "invalid slot label, expected hh:mm AM/PM"
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

// HandleAdd POST /api/v1/shops/{shopId}/slots
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	identity, shopID, ok := h.guardShop(w, r)
	if !ok {
		return
	}

	var req AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/%d/slots - Invalid request body: %v", shopID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddSlot(r.Context(), &models.AddSlotRequest{
		OwnerID: identity.UserID,
		Label:   req.Slot,
	})
	if err != nil {
		h.respondServiceError(w, "POST /shops/{shopId}/slots", shopID, identity.UserID, err, msgInvalidSlotLabel)
		return
	}

	h.logger.Info("POST /shops/%d/slots - Slot %q declared: owner=%d", shopID, result.Label, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleSet PUT /api/v1/shops/{shopId}/slots/{label}
func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	identity, shopID, ok := h.guardShop(w, r)
	if !ok {
		return
	}
	label := mux.Vars(r)["label"]

	// An empty body means "toggle".
	var req SetSlotBookableRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PUT /shops/%d/slots/%s - Invalid request body: %v", shopID, label, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.service.SetSlotBookable(r.Context(), &models.SetSlotBookableRequest{
		OwnerID:    identity.UserID,
		Label:      label,
		IsBookable: req.IsBookable,
	})
	if err != nil {
		h.respondServiceError(w, "PUT /shops/{shopId}/slots/{label}", shopID, identity.UserID, err, msgInvalidRequestBody)
		return
	}

	h.logger.Info("PUT /shops/%d/slots/%s - Bookable set to %v: owner=%d",
		shopID, result.Label, result.IsBookable, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) guardShop(w http.ResponseWriter, r *http.Request) (middleware.Identity, int64, bool) {
	identity, _ := middleware.FromContext(r.Context())
	raw := mux.Vars(r)["shopId"]

	shopID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || identity.ShopID == nil || *identity.ShopID != shopID {
		h.logger.Warn("slots - Shop mismatch: owner=%d, path_shop=%q", identity.UserID, raw)
		handlers.RespondForbidden(w, msgNotYourShop)
		return identity, 0, false
	}
	return identity, shopID, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, shopID, ownerID int64, err error, badRequestMsg string) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Validation failed: shop=%d, owner=%d: %v", route, shopID, ownerID, err)
		handlers.RespondBadRequest(w, badRequestMsg)

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
