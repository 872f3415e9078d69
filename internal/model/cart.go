package model

// CartItem is a cart line: a value snapshot of the product taken when it was
// added, plus a quantity. Later catalogue edits or deletions do not propagate
// into existing cart lines.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartTotal sums price times quantity across the given lines.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
