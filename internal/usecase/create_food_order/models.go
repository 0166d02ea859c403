package create_food_order

import (
	"time"

	"github.com/haritapaliwal/campus-ease/internal/domain"
)

// CartItem is one line of the submitted cart.
type CartItem struct {
	Item  string
	Price float64
	Shop  string
}

// Request carries a mixed-shop cart submission.
type Request struct {
	UserID    int64
	Items     []CartItem
	OrderType string
}

// Order is one created order in the response.
type Order struct {
	ID        int64
	UserID    int64
	Items     []domain.OrderLine
	OrderType string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Response lists the orders the cart was split into, one per shop.
type Response struct {
	Orders []Order
}
