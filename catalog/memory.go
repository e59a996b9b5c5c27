package catalog

import (
	"context"
	"strings"

	"github.com/MasinARK/E-commerce/models"
)

// MemoryCatalog serves a fixed product list from memory. Used as the
// demo-mode catalog when no database is configured, and as the catalog
// double in tests. The list is immutable after construction, so reads
// need no locking.
type MemoryCatalog struct {
	products []models.Product
}

func NewMemoryCatalog(products []models.Product) *MemoryCatalog {
	ps := make([]models.Product, len(products))
	copy(ps, products)
	return &MemoryCatalog{products: ps}
}

func (mc *MemoryCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), mc.products...), nil
}

func (mc *MemoryCatalog) GetProduct(ctx context.Context, id string) (models.Product, error) {
	for _, p := range mc.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (mc *MemoryCatalog) ListFeatured(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range mc.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (mc *MemoryCatalog) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range mc.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Search matches the query as a case-insensitive substring of name,
// description or category.
func (mc *MemoryCatalog) Search(ctx context.Context, query string) ([]models.Product, error) {
	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range mc.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}
