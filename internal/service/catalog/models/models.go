package models

import "github.com/haritapaliwal/campus-ease/internal/domain"

// Request models

// AddMenuItemRequest adds one priced entry to a canteen menu.
type AddMenuItemRequest struct {
	OwnerID int64
	Item    string
	Price   float64
}

// AddSlotRequest declares a new slot label for a barber shop.
type AddSlotRequest struct {
	OwnerID int64
	Label   string
}

// SetSlotBookableRequest flips or sets a slot's manual override.
type SetSlotBookableRequest struct {
	OwnerID int64
	Label   string
	// IsBookable is the explicit target state; nil toggles the stored
	// value. A label with no stored setting toggles to blocked.
	IsBookable *bool
}

// AddLaundryItemRequest adds a priced laundry service entry.
type AddLaundryItemRequest struct {
	OwnerID  int64
	Category string
	Name     string
	Price    float64
}

// UpdateLaundryItemRequest edits a laundry catalog entry. Nil fields are
// left unchanged.
type UpdateLaundryItemRequest struct {
	OwnerID int64
	ItemID  int64
	Name    *string
	Price   *float64
}

// DeleteLaundryItemRequest removes a laundry catalog entry.
type DeleteLaundryItemRequest struct {
	OwnerID int64
	ItemID  int64
}

// Response models

// MenuItemResponse is a canteen menu entry DTO.
type MenuItemResponse struct {
	ID    int64   `json:"id"`
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

// SlotSettingResponse is a slot label with its override flag.
type SlotSettingResponse struct {
	Label      string `json:"label"`
	IsBookable bool   `json:"isBookable"`
}

// LaundryItemResponse is a laundry catalog entry DTO.
type LaundryItemResponse struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

// ShopResponse is a shop with the catalog relevant to its type.
type ShopResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	Menu           []MenuItemResponse    `json:"menu,omitempty"`
	Slots          []SlotSettingResponse `json:"slots,omitempty"`
	LaundryCatalog []LaundryItemResponse `json:"laundryCatalog,omitempty"`
}

// ShopListResponse lists shops.
type ShopListResponse struct {
	Shops []ShopResponse `json:"shops"`
}

// Conversion helpers

// FromDomainShop converts a domain shop to its DTO.
func FromDomainShop(s *domain.Shop) *ShopResponse {
	if s == nil {
		return nil
	}
	resp := &ShopResponse{
		ID:   s.ID,
		Name: s.Name,
		Type: string(s.Type),
	}
	for _, m := range s.Menu {
		resp.Menu = append(resp.Menu, MenuItemResponse{ID: m.ID, Item: m.Item, Price: m.Price})
	}
	for _, slot := range s.Slots {
		resp.Slots = append(resp.Slots, SlotSettingResponse{Label: slot.Label, IsBookable: slot.IsBookable})
	}
	for _, item := range s.LaundryCatalog {
		resp.LaundryCatalog = append(resp.LaundryCatalog, LaundryItemResponse{
			ID:       item.ID,
			Category: string(item.Category),
			Name:     item.Name,
			Price:    item.Price,
		})
	}
	return resp
}

// FromDomainShopList converts a list of domain shops to DTOs.
func FromDomainShopList(shops []*domain.Shop) *ShopListResponse {
	resp := &ShopListResponse{Shops: make([]ShopResponse, 0, len(shops))}
	for _, s := range shops {
		if dto := FromDomainShop(s); dto != nil {
			resp.Shops = append(resp.Shops, *dto)
		}
	}
	return resp
}
