package domain

// CartItem is a single cart line. The product is value-copied at add time so
// later catalog changes cannot alter what the customer put in the cart.
type CartItem struct {
	ID           string  `json:"id"`
	Product      Product `json:"product"`
	Quantity     int     `json:"quantity"`
	SelectedSize string  `json:"selectedSize,omitempty"`
}

// LineTotal is price times quantity for this line.
func (i CartItem) LineTotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

// Clone returns a deep copy of the item.
func (i CartItem) Clone() CartItem {
	out := i
	out.Product = i.Product.Clone()
	return out
}

// CloneItems deep-copies a slice of cart items. Used when snapshotting a
// cart into an order.
func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	for idx, item := range items {
		out[idx] = item.Clone()
	}
	return out
}
