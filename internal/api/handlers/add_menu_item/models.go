package add_menu_item

// AddMenuItemRequest is the HTTP request model.
type AddMenuItemRequest struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}
