package manage_slots

import (
	"context"

	"github.com/haritapaliwal/campus-ease/internal/service/catalog/models"
)

type CatalogService interface {
	AddSlot(ctx context.Context, req *models.AddSlotRequest) (*models.SlotSettingResponse, error)
	SetSlotBookable(ctx context.Context, req *models.SetSlotBookableRequest) (*models.SlotSettingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
