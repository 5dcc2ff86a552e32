package domain

// CartItem is a single product selection. A cart never holds two items
// with the same ProductID.
type CartItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Cart is the session-scoped collection of selected items, kept in
// insertion order.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Find returns the index of the item with the given product id, or -1.
func (c Cart) Find(productID int64) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
