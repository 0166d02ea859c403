package models

import (
	"time"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

// Request models

// UpdateStatusRequest asks to move a booking into a new status. OwnerID is
// the authenticated shop owner driving the change.
type UpdateStatusRequest struct {
	OwnerID int64
	Kind    domain.BookingKind
	ID      int64
	Status  string
}

// CancelRequest asks to cancel the caller's own booking.
type CancelRequest struct {
	UserID int64
	Kind   domain.BookingKind
	ID     int64
}

// Response models

// BarberBookingResponse is a barber booking DTO.
type BarberBookingResponse struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Slot        string     `json:"slot"`
	BookingDate string     `json:"bookingDate"` // "2025-10-15"
	Status      string     `json:"status"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// LaundryLineResponse is a snapshotted laundry line DTO.
type LaundryLineResponse struct {
	ItemID   int64   `json:"itemId"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// LaundryBookingResponse is a laundry booking DTO.
type LaundryBookingResponse struct {
	ID             int64                 `json:"id"`
	UserID         int64                 `json:"userId"`
	ShopID         int64                 `json:"shopId"`
	Items          []LaundryLineResponse `json:"items"`
	PickupDate     string                `json:"pickupDate"`
	PickupTime     string                `json:"pickupTime"`
	DeliveryOption string                `json:"deliveryOption"`
	ServiceType    string                `json:"serviceType"`
	TotalAmount    float64               `json:"totalAmount"`
	Status         string                `json:"status"`
	DeliveredAt    *time.Time            `json:"deliveredAt,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// OrderLineResponse is a food order line DTO.
type OrderLineResponse struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
	Shop  string  `json:"shop"`
}

// FoodOrderResponse is a food order DTO.
type FoodOrderResponse struct {
	ID          int64               `json:"id"`
	UserID      int64               `json:"userId"`
	Items       []OrderLineResponse `json:"items"`
	OrderType   string              `json:"orderType"`
	Status      string              `json:"status"`
	DeliveredAt *time.Time          `json:"deliveredAt,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// CustomerResponse is the public customer subset shown to shop owners.
type CustomerResponse struct {
	UserID    int64   `json:"userId"`
	StudentID *string `json:"studentId,omitempty"`
	Email     string  `json:"email"`
}

// MyBookingsResponse bundles the caller's recent activity across all three
// collections.
type MyBookingsResponse struct {
	FoodOrders      []FoodOrderResponse      `json:"foodOrders"`
	BarberBookings  []BarberBookingResponse  `json:"barberBookings"`
	LaundryBookings []LaundryBookingResponse `json:"laundryBookings"`
}

// ShopFoodOrder is a food order on a canteen owner's dashboard, enriched
// with the customer profile and the shop's own subtotal.
type ShopFoodOrder struct {
	FoodOrderResponse
	Customer *CustomerResponse `json:"customer,omitempty"`
	Subtotal float64           `json:"subtotal"`
}

// ShopBarberBooking is a barber booking on an owner's dashboard.
type ShopBarberBooking struct {
	BarberBookingResponse
	Customer *CustomerResponse `json:"customer,omitempty"`
}

// ShopLaundryBooking is a laundry booking on an owner's dashboard.
type ShopLaundryBooking struct {
	LaundryBookingResponse
	Customer *CustomerResponse `json:"customer,omitempty"`
}

// ShopBookingsResponse is the owner dashboard listing. Exactly one of the
// three slices is populated, matching the owner's shop type.
type ShopBookingsResponse struct {
	ShopID   int64  `json:"shopId"`
	ShopType string `json:"shopType"`

	FoodOrders      []ShopFoodOrder      `json:"foodOrders,omitempty"`
	BarberBookings  []ShopBarberBooking  `json:"barberBookings,omitempty"`
	LaundryBookings []ShopLaundryBooking `json:"laundryBookings,omitempty"`
}

// CustomerTotal is one customer's aggregated spend at a canteen.
type CustomerTotal struct {
	Customer CustomerResponse `json:"customer"`
	Orders   int              `json:"orders"`
	Total    float64          `json:"total"`
}

// CustomerTotalsResponse lists per-customer spend for a canteen owner.
type CustomerTotalsResponse struct {
	ShopID    int64           `json:"shopId"`
	Customers []CustomerTotal `json:"customers"`
}

// StatusResponse reports the status a booking ended up in.
type StatusResponse struct {
	ID     int64  `json:"id"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

// Conversion helpers

// FromDomainBarberBooking converts a domain barber booking to its DTO.
func FromDomainBarberBooking(b *domain.BarberBooking) BarberBookingResponse {
	return BarberBookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Slot:        b.Slot,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		Status:      string(b.Status),
		DeliveredAt: b.DeliveredAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainLaundryBooking converts a domain laundry booking to its DTO.
func FromDomainLaundryBooking(b *domain.LaundryBooking) LaundryBookingResponse {
	items := make([]LaundryLineResponse, 0, len(b.Items))
	for _, line := range b.Items {
		items = append(items, LaundryLineResponse{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Category: string(line.Category),
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	return LaundryBookingResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		ShopID:         b.ShopID,
		Items:          items,
		PickupDate:     b.PickupDate,
		PickupTime:     b.PickupTime,
		DeliveryOption: b.DeliveryOption,
		ServiceType:    b.ServiceType,
		TotalAmount:    b.TotalAmount,
		Status:         string(b.Status),
		DeliveredAt:    b.DeliveredAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainFoodOrder converts a domain food order to its DTO.
func FromDomainFoodOrder(o *domain.FoodOrder) FoodOrderResponse {
	items := make([]OrderLineResponse, 0, len(o.Items))
	for _, line := range o.Items {
		items = append(items, OrderLineResponse{
			Item:  line.Item,
			Price: line.Price,
			Shop:  line.Shop,
		})
	}
	return FoodOrderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		Items:       items,
		OrderType:   o.OrderType,
		Status:      string(o.Status),
		DeliveredAt: o.DeliveredAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// FromDomainCustomerProfile converts a customer profile to its DTO.
func FromDomainCustomerProfile(p domain.CustomerProfile) CustomerResponse {
	return CustomerResponse{
		UserID:    p.UserID,
		StudentID: p.StudentID,
		Email:     p.Email,
	}
}
