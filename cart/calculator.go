package cart

import "github.com/MasinARK/E-commerce/models"

// Totals holds the derived monetary fields of a cart, in minor units.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// CalculateTotals derives subtotal, tax and total from the given line
// items at the given tax rate in basis points. Tax is rounded half-up.
// All arithmetic stays in integer minor units. Empty input yields zero
// totals.
func CalculateTotals(items []models.LineItem, taxRateBP int64) Totals {
	var subtotal int64
	for _, it := range items {
		subtotal += it.Product.Price * int64(it.Quantity)
	}
	tax := (subtotal*taxRateBP + 5000) / 10000
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
