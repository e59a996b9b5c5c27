package cart

import "github.com/MasinARK/E-commerce/models"

// Command is one cart mutation. Every command applied to a valid cart
// yields a valid cart; commands never fail.
type Command interface {
	isCommand()
}

// AddItem merges the product into the cart: an existing line gains one
// unit, otherwise a new line with quantity 1 is appended.
type AddItem struct {
	Product models.Product
}

// RemoveItem deletes the line for the product id, if present.
type RemoveItem struct {
	ProductID string
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// removes the line.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// Clear resets the cart to empty.
type Clear struct{}

func (AddItem) isCommand()        {}
func (RemoveItem) isCommand()     {}
func (UpdateQuantity) isCommand() {}
func (Clear) isCommand()          {}

// Empty returns a cart with no items and zero totals.
func Empty() models.Cart {
	return models.Cart{Items: []models.LineItem{}}
}

// Apply computes the next cart from the previous cart and one command,
// re-deriving totals on every transition. An unrecognized command
// leaves the cart unchanged. Insertion order of first-add is preserved
// across all transitions.
func Apply(c models.Cart, cmd Command, taxRateBP int64) models.Cart {
	switch cmd := cmd.(type) {
	case AddItem:
		items := make([]models.LineItem, len(c.Items))
		copy(items, c.Items)
		merged := false
		for i := range items {
			if items[i].Product.ID == cmd.Product.ID {
				items[i].Quantity++
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, models.LineItem{Product: cmd.Product, Quantity: 1})
		}
		return withTotals(items, taxRateBP)

	case RemoveItem:
		items := make([]models.LineItem, 0, len(c.Items))
		for _, it := range c.Items {
			if it.Product.ID != cmd.ProductID {
				items = append(items, it)
			}
		}
		return withTotals(items, taxRateBP)

	case UpdateQuantity:
		items := make([]models.LineItem, 0, len(c.Items))
		for _, it := range c.Items {
			if it.Product.ID == cmd.ProductID {
				it.Quantity = cmd.Quantity
			}
			if it.Quantity > 0 {
				items = append(items, it)
			}
		}
		return withTotals(items, taxRateBP)

	case Clear:
		return Empty()

	default:
		return c
	}
}

func withTotals(items []models.LineItem, taxRateBP int64) models.Cart {
	t := CalculateTotals(items, taxRateBP)
	return models.Cart{
		Items:    items,
		Subtotal: t.Subtotal,
		Tax:      t.Tax,
		Total:    t.Total,
	}
}
