package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/haritapaliwal/campus-ease/internal/domain"
	shopRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/shop"
	"github.com/haritapaliwal/campus-ease/internal/service/catalog/models"
	"github.com/haritapaliwal/campus-ease/pkg/types"
)

// Service owns the shop catalogs: canteen menus, barber slot settings and
// laundry price lists. Every mutation is scoped to the caller's own shop.
type Service struct {
	shops  ShopRepository
	logger Logger
}

// NewService creates the catalog service.
func NewService(shops ShopRepository, logger Logger) *Service {
	return &Service{shops: shops, logger: logger}
}

// ListShops returns all shops, optionally filtered by type.
func (s *Service) ListShops(ctx context.Context, typeFilter *string) (*models.ShopListResponse, error) {
	var shopType *domain.ShopType
	if typeFilter != nil && *typeFilter != "" {
		parsed, ok := domain.ParseShopType(*typeFilter)
		if !ok {
			s.logger.Warn("ListShops: unknown shop type %q", *typeFilter)
			return nil, fmt.Errorf("%w: unknown shop type", ErrInvalidInput)
		}
		shopType = &parsed
	}

	shops, err := s.shops.ListByType(ctx, shopType)
	if err != nil {
		s.logger.Error("ListShops: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListShops - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListShops: returning %d shops", len(shops))
	return models.FromDomainShopList(shops), nil
}

// MyShop returns the caller's own shop with its catalogs.
func (s *Service) MyShop(ctx context.Context, ownerID int64) (*models.ShopResponse, error) {
	shop, err := s.ownerShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainShop(shop), nil
}

// AddMenuItem appends a priced entry to the owner's canteen menu.
func (s *Service) AddMenuItem(ctx context.Context, req *models.AddMenuItemRequest) (*models.MenuItemResponse, error) {
	s.logger.Info("AddMenuItem: owner=%d, item=%q, price=%.2f", req.OwnerID, req.Item, req.Price)

	if req.Item == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	shop, err := s.ownerShopOfType(ctx, req.OwnerID, domain.ShopCanteen)
	if err != nil {
		return nil, err
	}

	item, err := s.shops.AddMenuItem(ctx, shop.ID, req.Item, req.Price)
	if err != nil {
		s.logger.Error("AddMenuItem: repository error for shop=%d: %v", shop.ID, err)
		return nil, fmt.Errorf("%w: AddMenuItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddMenuItem: added item id=%d to shop=%d", item.ID, shop.ID)
	return &models.MenuItemResponse{ID: item.ID, Item: item.Item, Price: item.Price}, nil
}

// AddSlot declares a new bookable slot label for the owner's barber shop.
// The label must parse as a 12-hour clock time so availability can sort it.
func (s *Service) AddSlot(ctx context.Context, req *models.AddSlotRequest) (*models.SlotSettingResponse, error) {
	s.logger.Info("AddSlot: owner=%d, label=%q", req.OwnerID, req.Label)

	label, err := types.ParseTimeLabel(req.Label)
	if err != nil {
		s.logger.Warn("AddSlot: label %q rejected: %v", req.Label, err)
		return nil, fmt.Errorf("%w: invalid slot label", ErrInvalidInput)
	}

	shop, err := s.ownerShopOfType(ctx, req.OwnerID, domain.ShopBarber)
	if err != nil {
		return nil, err
	}

	if err := s.shops.UpsertSlot(ctx, shop.ID, label.String(), true); err != nil {
		s.logger.Error("AddSlot: repository error for shop=%d: %v", shop.ID, err)
		return nil, fmt.Errorf("%w: AddSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSlot: slot %q added to shop=%d", label, shop.ID)
	return &models.SlotSettingResponse{Label: label.String(), IsBookable: true}, nil
}

// SetSlotBookable flips or sets the manual override of a slot label. With no
// explicit target the stored value toggles; a label with no stored setting
// is bookable by default, so its first toggle blocks it.
func (s *Service) SetSlotBookable(ctx context.Context, req *models.SetSlotBookableRequest) (*models.SlotSettingResponse, error) {
	s.logger.Info("SetSlotBookable: owner=%d, label=%q", req.OwnerID, req.Label)

	if req.Label == "" {
		return nil, fmt.Errorf("%w: slot label is required", ErrInvalidInput)
	}

	shop, err := s.ownerShopOfType(ctx, req.OwnerID, domain.ShopBarber)
	if err != nil {
		return nil, err
	}

	target := false
	if req.IsBookable != nil {
		target = *req.IsBookable
	} else {
		setting, err := s.shops.GetSlot(ctx, shop.ID, req.Label)
		if err != nil && !errors.Is(err, shopRepo.ErrItemNotFound) {
			s.logger.Error("SetSlotBookable: repository error for shop=%d: %v", shop.ID, err)
			return nil, fmt.Errorf("%w: SetSlotBookable - repository error: %v", ErrInternal, err)
		}
		if setting != nil {
			target = !setting.IsBookable
		}
	}

	if err := s.shops.UpsertSlot(ctx, shop.ID, req.Label, target); err != nil {
		s.logger.Error("SetSlotBookable: repository error for shop=%d: %v", shop.ID, err)
		return nil, fmt.Errorf("%w: SetSlotBookable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetSlotBookable: slot %q on shop=%d set bookable=%v", req.Label, shop.ID, target)
	return &models.SlotSettingResponse{Label: req.Label, IsBookable: target}, nil
}

// AddLaundryItem appends a priced entry to the owner's laundry catalog.
func (s *Service) AddLaundryItem(ctx context.Context, req *models.AddLaundryItemRequest) (*models.LaundryItemResponse, error) {
	s.logger.Info("AddLaundryItem: owner=%d, category=%q, name=%q, price=%.2f",
		req.OwnerID, req.Category, req.Name, req.Price)

	category, ok := domain.ParseLaundryCategory(req.Category)
	if !ok {
		s.logger.Warn("AddLaundryItem: unknown category %q", req.Category)
		return nil, fmt.Errorf("%w: unknown laundry category", ErrInvalidInput)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	shop, err := s.ownerShopOfType(ctx, req.OwnerID, domain.ShopLaundry)
	if err != nil {
		return nil, err
	}

	item, err := s.shops.AddLaundryItem(ctx, shop.ID, domain.LaundryCatalogItem{
		Category: category,
		Name:     req.Name,
		Price:    req.Price,
	})
	if err != nil {
		s.logger.Error("AddLaundryItem: repository error for shop=%d: %v", shop.ID, err)
		return nil, fmt.Errorf("%w: AddLaundryItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddLaundryItem: added item id=%d to shop=%d", item.ID, shop.ID)
	return &models.LaundryItemResponse{
		ID:       item.ID,
		Category: string(item.Category),
		Name:     item.Name,
		Price:    item.Price,
	}, nil
}

// UpdateLaundryItem edits name and/or price of a laundry catalog entry.
// Catalog edits never touch snapshotted booking lines.
func (s *Service) UpdateLaundryItem(ctx context.Context, req *models.UpdateLaundryItemRequest) (*models.LaundryItemResponse, error) {
	s.logger.Info("UpdateLaundryItem: owner=%d, item=%d", req.OwnerID, req.ItemID)

	if req.Name == nil && req.Price == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", ErrInvalidInput)
	}
	if req.Price != nil && *req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}

	shop, err := s.ownerShopOfType(ctx, req.OwnerID, domain.ShopLaundry)
	if err != nil {
		return nil, err
	}

	item, err := s.shops.UpdateLaundryItem(ctx, shop.ID, req.ItemID, req.Name, req.Price)
	if err != nil {
		if errors.Is(err, shopRepo.ErrItemNotFound) {
			s.logger.Warn("UpdateLaundryItem: item id=%d not found in shop=%d", req.ItemID, shop.ID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("UpdateLaundryItem: repository error for shop=%d: %v", shop.ID, err)
		return nil, fmt.Errorf("%w: UpdateLaundryItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateLaundryItem: updated item id=%d in shop=%d", item.ID, shop.ID)
	return &models.LaundryItemResponse{
		ID:       item.ID,
		Category: string(item.Category),
		Name:     item.Name,
		Price:    item.Price,
	}, nil
}

// DeleteLaundryItem removes a laundry catalog entry.
func (s *Service) DeleteLaundryItem(ctx context.Context, req *models.DeleteLaundryItemRequest) error {
	s.logger.Info("DeleteLaundryItem: owner=%d, item=%d", req.OwnerID, req.ItemID)

	shop, err := s.ownerShopOfType(ctx, req.OwnerID, domain.ShopLaundry)
	if err != nil {
		return err
	}

	if err := s.shops.DeleteLaundryItem(ctx, shop.ID, req.ItemID); err != nil {
		if errors.Is(err, shopRepo.ErrItemNotFound) {
			s.logger.Warn("DeleteLaundryItem: item id=%d not found in shop=%d", req.ItemID, shop.ID)
			return ErrItemNotFound
		}
		s.logger.Error("DeleteLaundryItem: repository error for shop=%d: %v", shop.ID, err)
		return fmt.Errorf("%w: DeleteLaundryItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteLaundryItem: removed item id=%d from shop=%d", req.ItemID, shop.ID)
	return nil
}

// Helpers

func (s *Service) ownerShop(ctx context.Context, ownerID int64) (*domain.Shop, error) {
	shop, err := s.shops.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			s.logger.Warn("ownerShop: owner=%d has no shop", ownerID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("ownerShop: failed to get shop for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ownerShop - repository error: %v", ErrInternal, err)
	}
	return shop, nil
}

// ownerShopOfType resolves the caller's shop and checks it is of the type
// the catalog operation applies to.
func (s *Service) ownerShopOfType(ctx context.Context, ownerID int64, shopType domain.ShopType) (*domain.Shop, error) {
	shop, err := s.ownerShop(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if shop.Type != shopType {
		s.logger.Warn("ownerShopOfType: shop id=%d is %s, operation needs %s", shop.ID, shop.Type, shopType)
		return nil, ErrAccessDenied
	}
	return shop, nil
}
