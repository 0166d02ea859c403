package create_food_order

import (
	"context"

	createOrder "github.com/haritapaliwal/campus-ease/internal/usecase/create_food_order"
)

type CreateFoodOrderUseCase interface {
	Execute(ctx context.Context, req *createOrder.Request) (*createOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
