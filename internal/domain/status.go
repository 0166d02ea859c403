package domain

// BookingKind identifies which of the three booking collections a record
// belongs to. All three share the same status lifecycle.
type BookingKind string

const (
	KindFood    BookingKind = "food"
	KindBarber  BookingKind = "barber"
	KindLaundry BookingKind = "laundry"
)

// ParseBookingKind validates a kind string from the URL path.
func ParseBookingKind(s string) (BookingKind, bool) {
	switch BookingKind(s) {
	case KindFood, KindBarber, KindLaundry:
		return BookingKind(s), true
	default:
		return "", false
	}
}

// BookingStatus represents the lifecycle state of a booking or order.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending" // food orders start here
	StatusBooked    BookingStatus = "booked"  // barber/laundry bookings start here
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusPrepared  BookingStatus = "prepared" // food only
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// InitialStatus returns the state a freshly created booking of the given
// kind is persisted with.
func InitialStatus(kind BookingKind) BookingStatus {
	if kind == KindFood {
		return StatusPending
	}
	return StatusBooked
}

// ParseBookingStatus validates a status string from a request body.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusBooked, StatusAccepted, StatusRejected,
		StatusPrepared, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// transitions is the shared state machine. "pending" and "booked" are the
// same initial node under two names; prepared is reachable for food only
// (checked in CanTransition). Terminal states have no outgoing edges.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusAccepted, StatusRejected, StatusCancelled},
	StatusBooked:   {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted: {StatusPrepared, StatusCompleted, StatusCancelled},
	StatusPrepared: {StatusCompleted, StatusCancelled},
}

// IsTerminal reports whether no further transitions are allowed out of s.
func IsTerminal(s BookingStatus) bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a booking of the given kind may move from
// one status to another. Re-applying the current status is allowed (the
// caller treats it as a no-op).
func CanTransition(kind BookingKind, from, to BookingStatus) bool {
	if from == to {
		return true
	}
	if to == StatusPrepared && kind != KindFood {
		return false
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// OwnerSettableStatuses are the states a shop owner may drive a booking
// into. The owning customer may only cancel.
var OwnerSettableStatuses = []BookingStatus{
	StatusAccepted,
	StatusRejected,
	StatusPrepared,
	StatusCompleted,
}

// IsOwnerSettable reports whether s is a status owners are allowed to set.
func IsOwnerSettable(s BookingStatus) bool {
	for _, allowed := range OwnerSettableStatuses {
		if allowed == s {
			return true
		}
	}
	return false
}

// IsActiveStatus reports whether a booking in state s occupies slot
// capacity and shows up in active listings.
func IsActiveStatus(s BookingStatus) bool {
	for _, inactive := range InactiveStatuses {
		if inactive == s {
			return false
		}
	}
	return true
}
