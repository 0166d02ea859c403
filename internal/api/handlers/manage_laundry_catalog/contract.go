package manage_laundry_catalog

import (
	"context"

	"github.com/haritapaliwal/campus-ease/internal/service/catalog/models"
)

type CatalogService interface {
	AddLaundryItem(ctx context.Context, req *models.AddLaundryItemRequest) (*models.LaundryItemResponse, error)
	UpdateLaundryItem(ctx context.Context, req *models.UpdateLaundryItemRequest) (*models.LaundryItemResponse, error)
	DeleteLaundryItem(ctx context.Context, req *models.DeleteLaundryItemRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
