package catalog

import (
	"context"
	"errors"

	"github.com/MasinARK/E-commerce/models"
)

// ErrNotFound reports a lookup for a product id the catalog does not
// carry.
var ErrNotFound = errors.New("product not found")

// Catalog is the read-only product source the storefront renders from
// and checkout re-prices against. All methods are side-effect-free and
// implementations must be safe for concurrent use.
type Catalog interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	ListFeatured(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
}
