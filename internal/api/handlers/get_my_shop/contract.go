package get_my_shop

import (
	"context"

	"github.com/haritapaliwal/campus-ease/internal/service/catalog/models"
)

type CatalogService interface {
	MyShop(ctx context.Context, ownerID int64) (*models.ShopResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
