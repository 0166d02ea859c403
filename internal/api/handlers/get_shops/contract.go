package get_shops

import (
	"context"

	"github.com/haritapaliwal/campus-ease/internal/service/catalog/models"
)

type CatalogService interface {
	ListShops(ctx context.Context, typeFilter *string) (*models.ShopListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
