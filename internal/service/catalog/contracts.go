package catalog

import (
	"context"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

// ShopRepository is the shop and catalog storage this service drives.
type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
	GetByOwner(ctx context.Context, ownerID int64) (*domain.Shop, error)
	ListByType(ctx context.Context, shopType *domain.ShopType) ([]*domain.Shop, error)
	AddMenuItem(ctx context.Context, shopID int64, item string, price float64) (*domain.MenuItem, error)
	UpsertSlot(ctx context.Context, shopID int64, label string, isBookable bool) error
	GetSlot(ctx context.Context, shopID int64, label string) (*domain.SlotSetting, error)
	AddLaundryItem(ctx context.Context, shopID int64, item domain.LaundryCatalogItem) (*domain.LaundryCatalogItem, error)
	UpdateLaundryItem(ctx context.Context, shopID, itemID int64, name *string, price *float64) (*domain.LaundryCatalogItem, error)
	DeleteLaundryItem(ctx context.Context, shopID, itemID int64) error
}

// Logger is the logging interface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
