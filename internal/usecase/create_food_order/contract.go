package create_food_order

import (
	"context"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

// OrderRepository is the food order storage this use case writes.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.FoodOrder) (*domain.FoodOrder, error)
}

// TransactionManager runs a function inside a transaction so the orders of
// one cart commit together.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
