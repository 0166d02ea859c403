package get_available_slots

// SlotsResponse lists the open slot labels for one day.
type SlotsResponse struct {
	Date  string   `json:"date"` // "2025-10-15"
	Slots []string `json:"slots"`
}
