package domain

import "time"

// Business constants shared by the booking flows.
const (
	// SlotCapacity is the maximum number of active barber bookings per
	// (slot label, calendar date) pair.
	SlotCapacity = 3

	// ExpressSurcharge is added to a laundry booking total when the
	// delivery option is express.
	ExpressSurcharge = 25.0

	// RecentWindow bounds the customer "my bookings" and owner dashboard
	// views to recently created records.
	RecentWindow = 24 * time.Hour
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CanonicalSlots is the fallback barber slot catalog, used alongside any
// labels the shops declare themselves.
var CanonicalSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
}

// InactiveStatuses is the terminal-exclusion set: bookings in these states
// do not occupy slot capacity and are hidden from owner dashboards where
// noted. A completed booking frees its slot for new customers.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
	StatusCompleted,
}

// Delivery options for laundry bookings.
const (
	DeliveryStandard = "standard"
	DeliveryExpress  = "express"
)

// Food order types.
const (
	OrderDaytime = "daytime"
	OrderNight   = "night"
)
