package models

// CartItem is one line of a cart. Items are unique per
// (product id, size, color); adding the same combination again increments
// the quantity of the existing line.
type CartItem struct {
	Product  Product `json:"product"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
	Quantity int     `json:"quantity"`
}

// Matches reports whether the line carries the given composite key.
func (i CartItem) Matches(productID, size, color string) bool {
	return i.Product.ID == productID && i.Size == size && i.Color == color
}

// CartState is a snapshot of a cart. Total and ItemCount are derived from
// Items and recomputed on every mutation, never adjusted independently.
type CartState struct {
	Items        []CartItem `json:"items"`
	Total        float64    `json:"total"`
	ItemCount    int        `json:"itemCount"`
	CurrentOrder *Order     `json:"currentOrder,omitempty"`
}
