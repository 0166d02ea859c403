package get_my_shop

import (
	"errors"
	"net/http"

	"github.com/haritapaliwal/campus-ease/internal/api/handlers"
	"github.com/haritapaliwal/campus-ease/internal/api/middleware"
	"github.com/haritapaliwal/campus-ease/internal/service/catalog"
)

const msgShopNotFound = "shop not found"

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

// Handle GET /api/v1/shops/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.FromContext(r.Context())

	result, err := h.service.MyShop(r.Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrShopNotFound):
			h.logger.Warn("GET /shops/my - No shop for owner=%d", identity.UserID)
			handlers.RespondNotFound(w, msgShopNotFound)

		default:
			h.logger.Error("GET /shops/my - Failed: owner=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
