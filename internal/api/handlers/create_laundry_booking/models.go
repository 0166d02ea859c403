package create_laundry_booking

import (
	"time"

	createBooking "github.com/haritapaliwal/campus-ease/internal/usecase/create_laundry_booking"
)

// RequestItem references a catalog item with a quantity.
type RequestItem struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// CreateLaundryBookingRequest is the HTTP request model.
type CreateLaundryBookingRequest struct {
	ShopID         int64         `json:"shopId,omitempty"`
	Items          []RequestItem `json:"items"`
	PickupDate     string        `json:"pickupDate"`
	PickupTime     string        `json:"pickupTime"`
	DeliveryOption string        `json:"deliveryOption,omitempty"`
}

// LineResponse is one snapshotted booking line.
type LineResponse struct {
	ItemID   int64   `json:"itemId"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// LaundryBookingResponse is the HTTP response model.
type LaundryBookingResponse struct {
	ID             int64          `json:"id"`
	UserID         int64          `json:"userId"`
	ShopID         int64          `json:"shopId"`
	Items          []LineResponse `json:"items"`
	PickupDate     string         `json:"pickupDate"`
	PickupTime     string         `json:"pickupTime"`
	DeliveryOption string         `json:"deliveryOption"`
	ServiceType    string         `json:"serviceType"`
	TotalAmount    float64        `json:"totalAmount"`
	Status         string         `json:"status"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request.
func (r *CreateLaundryBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	items := make([]createBooking.RequestItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, createBooking.RequestItem{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}
	return &createBooking.Request{
		UserID:         userID,
		ShopID:         r.ShopID,
		Items:          items,
		PickupDate:     r.PickupDate,
		PickupTime:     r.PickupTime,
		DeliveryOption: r.DeliveryOption,
	}
}

// FromUseCaseResponse converts the use case result to the HTTP response.
func FromUseCaseResponse(resp *createBooking.Response) *LaundryBookingResponse {
	items := make([]LineResponse, 0, len(resp.Items))
	for _, line := range resp.Items {
		items = append(items, LineResponse{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Category: string(line.Category),
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	return &LaundryBookingResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		ShopID:         resp.ShopID,
		Items:          items,
		PickupDate:     resp.PickupDate,
		PickupTime:     resp.PickupTime,
		DeliveryOption: resp.DeliveryOption,
		ServiceType:    resp.ServiceType,
		TotalAmount:    resp.TotalAmount,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
