package manage_laundry_catalog

// AddLaundryItemRequest is the HTTP request model.
type AddLaundryItemRequest struct {
	Category string  `json:"category"` // laundry | dryclean | iron
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

// UpdateLaundryItemRequest is the HTTP request model; omitted fields stay
// unchanged.
type UpdateLaundryItemRequest struct {
	Name  *string  `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty"`
}
