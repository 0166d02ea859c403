package create_food_order

import (
	"time"

	createOrder "github.com/haritapaliwal/campus-ease/internal/usecase/create_food_order"
)

// CartItem is one submitted cart line.
type CartItem struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
	Shop  string  `json:"shop"`
}

// CreateFoodOrderRequest is the HTTP request model.
type CreateFoodOrderRequest struct {
	Items     []CartItem `json:"items"`
	OrderType string     `json:"orderType,omitempty"`
}

// LineResponse is one order line.
type LineResponse struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
	Shop  string  `json:"shop"`
}

// OrderResponse is one created order.
type OrderResponse struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"userId"`
	Items     []LineResponse `json:"items"`
	OrderType string         `json:"orderType"`
	Status    string         `json:"status"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
}

// CreateFoodOrderResponse lists the orders the cart was split into.
type CreateFoodOrderResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToUseCaseRequest converts the HTTP request.
func (r *CreateFoodOrderRequest) ToUseCaseRequest(userID int64) *createOrder.Request {
	items := make([]createOrder.CartItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, createOrder.CartItem{
			Item:  item.Item,
			Price: item.Price,
			Shop:  item.Shop,
		})
	}
	return &createOrder.Request{
		UserID:    userID,
		Items:     items,
		OrderType: r.OrderType,
	}
}

// FromUseCaseResponse converts the use case result to the HTTP response.
func FromUseCaseResponse(resp *createOrder.Response) *CreateFoodOrderResponse {
	out := &CreateFoodOrderResponse{Orders: make([]OrderResponse, 0, len(resp.Orders))}
	for _, o := range resp.Orders {
		lines := make([]LineResponse, 0, len(o.Items))
		for _, line := range o.Items {
			lines = append(lines, LineResponse{Item: line.Item, Price: line.Price, Shop: line.Shop})
		}
		out.Orders = append(out.Orders, OrderResponse{
			ID:        o.ID,
			UserID:    o.UserID,
			Items:     lines,
			OrderType: o.OrderType,
			Status:    o.Status,
			CreatedAt: o.CreatedAt.Format(time.RFC3339),
			UpdatedAt: o.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out
}
