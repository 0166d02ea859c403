package manage_slots

// AddSlotRequest is the HTTP request model for declaring a slot.
type AddSlotRequest struct {
	Slot string `json:"slot"` // "10:00 AM"
}

// SetSlotBookableRequest is the HTTP request model for the override toggle.
// IsBookable omitted means "toggle the stored value".
type SetSlotBookableRequest struct {
	IsBookable *bool `json:"isBookable,omitempty"`
}
