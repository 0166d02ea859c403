package create_laundry_booking

import (
	"time"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

// RequestItem references a catalog item by id with a desired quantity.
type RequestItem struct {
	ItemID   int64
	Quantity int
}

// Request carries a laundry booking submission. ShopID is optional; when
// zero the first laundry shop is used.
type Request struct {
	UserID         int64
	ShopID         int64
	Items          []RequestItem
	PickupDate     string
	PickupTime     string
	DeliveryOption string
}

// Response is the created booking with its snapshotted lines.
type Response struct {
	ID             int64
	UserID         int64
	ShopID         int64
	Items          []domain.LaundryLine
	PickupDate     string
	PickupTime     string
	DeliveryOption string
	ServiceType    string
	TotalAmount    float64
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
