package add_menu_item

import (
	"context"

	"github.com/haritapaliwal/campus-ease/internal/service/catalog/models"
)

type CatalogService interface {
	AddMenuItem(ctx context.Context, req *models.AddMenuItemRequest) (*models.MenuItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
