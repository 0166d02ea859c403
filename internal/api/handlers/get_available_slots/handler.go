package get_available_slots

import (
	"net/http"
	"time"

	"github.com/haritapaliwal/campus-ease/internal/api/handlers"
	"github.com/haritapaliwal/campus-ease/internal/domain"
	getSlots "github.com/haritapaliwal/campus-ease/internal/usecase/get_available_slots"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barber/slots?date=YYYY-MM-DD
//
// A missing or malformed date parameter falls back to today instead of
// failing, matching what callers of this endpoint have always relied on.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /barber/slots - Malformed date %q, using today", raw)
		} else {
			date = parsed
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /barber/slots - Failed to compute availability: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SlotsResponse{
		Date:  result.Date.Format(domain.DateFormat),
		Slots: result.Slots,
	})
}
