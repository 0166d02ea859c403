package domain

import "time"

// BarberBooking reserves a slot label on a calendar date. BookingDate is
// always truncated to the start of the day; capacity is counted per
// (Slot, BookingDate) pair.
type BarberBooking struct {
	ID          int64
	UserID      int64
	Slot        string
	BookingDate time.Time
	Status      BookingStatus
	DeliveredAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking occupies slot capacity.
func (b *BarberBooking) IsActive() bool {
	return IsActiveStatus(b.Status)
}

// LaundryLine is a snapshotted laundry booking line item. Name, category and
// price are copied from the catalog at booking time so later catalog edits
// never alter historical bookings.
type LaundryLine struct {
	ItemID   int64
	Name     string
	Category LaundryCategory
	Quantity int
	Price    float64
}

// LaundryBooking is a laundry pickup order against a specific shop.
type LaundryBooking struct {
	ID             int64
	UserID         int64
	ShopID         int64
	Items          []LaundryLine
	PickupDate     string
	PickupTime     string
	DeliveryOption string
	ServiceType    string
	TotalAmount    float64
	Status         BookingStatus
	DeliveredAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderLine is a food order line item. Shop carries the shop name the item
// was ordered from; an order only ever holds lines of a single shop because
// carts are split at creation time.
type OrderLine struct {
	Item  string
	Price float64
	Shop  string
}

// FoodOrder is a canteen order.
type FoodOrder struct {
	ID          int64
	UserID      int64
	Items       []OrderLine
	OrderType   string
	Status      BookingStatus
	DeliveredAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContainsShop reports whether any line belongs to the named shop.
func (o *FoodOrder) ContainsShop(shopName string) bool {
	for _, line := range o.Items {
		if line.Shop == shopName {
			return true
		}
	}
	return false
}

// ShopSubtotal sums the prices of the lines belonging to the named shop.
func (o *FoodOrder) ShopSubtotal(shopName string) float64 {
	var total float64
	for _, line := range o.Items {
		if line.Shop == shopName {
			total += line.Price
		}
	}
	return total
}

// NormalizeDay truncates t to the start of its calendar day.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's calendar day used for inclusive
// range queries.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
