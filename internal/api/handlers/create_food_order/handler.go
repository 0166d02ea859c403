package create_food_order

import (
	"errors"
	"net/http"

	"github.com/haritapaliwal/campus-ease/internal/api/handlers"
	"github.com/haritapaliwal/campus-ease/internal/api/middleware"
	createOrder "github.com/haritapaliwal/campus-ease/internal/usecase/create_food_order"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmptyCart          = "cart is empty"
)

type Handler struct {
	useCase CreateFoodOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateFoodOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/food/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.FromContext(r.Context())

	var req CreateFoodOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /food/orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(identity.UserID))
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrEmptyCart):
			h.logger.Warn("POST /food/orders - Empty cart: user_id=%d", identity.UserID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /food/orders - Validation failed: user_id=%d: %v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /food/orders - Failed to create orders: user_id=%d, error=%v",
				identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /food/orders - Created %d orders: user_id=%d", len(result.Orders), identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
