package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/MasinARK/E-commerce/models"
)

func testCatalog() *MemoryCatalog {
	return NewMemoryCatalog([]models.Product{
		{ID: "p1", Name: "Classic Tee", Description: "Heavyweight cotton t-shirt", Category: "apparel", Price: 1999, Featured: true},
		{ID: "p2", Name: "Canvas Tote", Description: "Everyday tote bag", Category: "accessories", Price: 2450},
		{ID: "p3", Name: "Enamel Mug", Description: "Camp mug", Category: "homeware", Price: 1450, Featured: true},
	})
}

func TestMemoryCatalogGetProduct(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog()

	t.Run("known id", func(t *testing.T) {
		p, err := cat.GetProduct(ctx, "p2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Canvas Tote" {
			t.Fatalf("got %q", p.Name)
		}
	})

	t.Run("unknown id -> ErrNotFound", func(t *testing.T) {
		_, err := cat.GetProduct(ctx, "ghost")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestMemoryCatalogListings(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog()

	t.Run("list all", func(t *testing.T) {
		ps, err := cat.ListProducts(ctx)
		if err != nil || len(ps) != 3 {
			t.Fatalf("got %d products, err %v", len(ps), err)
		}
	})

	t.Run("featured only", func(t *testing.T) {
		ps, err := cat.ListFeatured(ctx)
		if err != nil || len(ps) != 2 {
			t.Fatalf("got %d products, err %v", len(ps), err)
		}
		for _, p := range ps {
			if !p.Featured {
				t.Fatalf("non-featured product %q in list", p.ID)
			}
		}
	})

	t.Run("by category, case-insensitive", func(t *testing.T) {
		ps, err := cat.ListByCategory(ctx, "Apparel")
		if err != nil || len(ps) != 1 || ps[0].ID != "p1" {
			t.Fatalf("got %+v, err %v", ps, err)
		}
	})
}

func TestMemoryCatalogSearch(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog()

	t.Run("matches name substring case-insensitively", func(t *testing.T) {
		ps, err := cat.Search(ctx, "TOTE")
		if err != nil || len(ps) != 1 || ps[0].ID != "p2" {
			t.Fatalf("got %+v, err %v", ps, err)
		}
	})

	t.Run("matches description", func(t *testing.T) {
		ps, err := cat.Search(ctx, "cotton")
		if err != nil || len(ps) != 1 || ps[0].ID != "p1" {
			t.Fatalf("got %+v, err %v", ps, err)
		}
	})

	t.Run("matches category", func(t *testing.T) {
		ps, err := cat.Search(ctx, "homeware")
		if err != nil || len(ps) != 1 || ps[0].ID != "p3" {
			t.Fatalf("got %+v, err %v", ps, err)
		}
	})

	t.Run("no match -> empty", func(t *testing.T) {
		ps, err := cat.Search(ctx, "zzz")
		if err != nil || len(ps) != 0 {
			t.Fatalf("got %+v, err %v", ps, err)
		}
	})
}
