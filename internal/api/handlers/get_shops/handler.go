package get_shops

import (
	"errors"
	"net/http"

	"github.com/haritapaliwal/campus-ease/internal/api/handlers"
	"github.com/haritapaliwal/campus-ease/internal/service/catalog"
)

const msgUnknownType = "unknown shop type"

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

// Handle GET /api/v1/shops?type=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var typeFilter *string
	if raw := r.URL.Query().Get("type"); raw != "" {
		typeFilter = &raw
	}

	result, err := h.service.ListShops(r.Context(), typeFilter)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /shops - Unknown type filter: %v", err)
			handlers.RespondBadRequest(w, msgUnknownType)

		default:
			h.logger.Error("GET /shops - Failed to list shops: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
