package get_available_slots

import "time"

// Request carries the day to compute barber availability for.
type Request struct {
	Date time.Time
}

// Response lists the slot labels still open for booking on the day.
type Response struct {
	Date  time.Time
	Slots []string
}
