package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFoodOrderContainsShop(t *testing.T) {
	order := &FoodOrder{
		Items: []OrderLine{
			{Item: "Cold Coffee", Price: 80, Shop: "CCD"},
			{Item: "Cappuccino", Price: 60, Shop: "CCD"},
		},
	}

	assert.True(t, order.ContainsShop("CCD"))
	assert.False(t, order.ContainsShop("Amul"))
	assert.False(t, order.ContainsShop(""))
}

func TestFoodOrderShopSubtotal(t *testing.T) {
	order := &FoodOrder{
		Items: []OrderLine{
			{Item: "Cold Coffee", Price: 80, Shop: "CCD"},
			{Item: "Veg Sandwich", Price: 90, Shop: "CCD"},
			{Item: "Butter Toast", Price: 40, Shop: "Amul"},
		},
	}

	assert.Equal(t, 170.0, order.ShopSubtotal("CCD"))
	assert.Equal(t, 40.0, order.ShopSubtotal("Amul"))
	assert.Equal(t, 0.0, order.ShopSubtotal("Vinayak"))
}

func TestNormalizeDay(t *testing.T) {
	in := time.Date(2026, 3, 14, 15, 9, 26, 535, time.UTC)
	got := NormalizeDay(in)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, got, NormalizeDay(got))
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2026, 3, 14, 15, 9, 26, 535, time.UTC)
	got := EndOfDay(in)

	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	assert.Equal(t, 59, got.Second())
	assert.True(t, got.Before(NormalizeDay(in).AddDate(0, 0, 1)))
}

func TestBarberBookingIsActive(t *testing.T) {
	booking := &BarberBooking{Status: StatusBooked}
	assert.True(t, booking.IsActive())

	booking.Status = StatusCompleted
	assert.False(t, booking.IsActive())
}
