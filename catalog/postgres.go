package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MasinARK/E-commerce/models"
)

// PostgresCatalog serves the catalog from a products table via GORM.
type PostgresCatalog struct {
	db *gorm.DB
}

func NewPostgresCatalog(db *gorm.DB) *PostgresCatalog {
	return &PostgresCatalog{db: db}
}

func (pc *PostgresCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := pc.db.WithContext(ctx).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (pc *PostgresCatalog) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := pc.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (pc *PostgresCatalog) ListFeatured(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := pc.db.WithContext(ctx).Where("featured = ?", true).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (pc *PostgresCatalog) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	if err := pc.db.WithContext(ctx).Where("LOWER(category) = LOWER(?)", category).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (pc *PostgresCatalog) Search(ctx context.Context, query string) ([]models.Product, error) {
	likePattern := "%" + query + "%"
	var products []models.Product
	err := pc.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ?", likePattern, likePattern, likePattern).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
