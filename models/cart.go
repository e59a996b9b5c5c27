package models

// LineItem pairs a catalog product with a quantity. A line item never
// exists with Quantity < 1; transitions that would drop the quantity to
// zero remove the line instead.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the per-session shopping cart. Items holds at most one line
// per product id, in first-add order. Subtotal, Tax and Total are in
// minor currency units and always derived from Items, never set
// directly.
type Cart struct {
	Items    []LineItem `json:"items"`
	Subtotal int64      `json:"subtotal"`
	Tax      int64      `json:"tax"`
	Total    int64      `json:"total"`
}
