package models

import "time"

// Product is one catalog entry. Price is in minor currency units
// (cents); monetary values are never floats. Stock is informational
// only, nothing in this service decrements it.
type Product struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	Category    string    `gorm:"index" json:"category"`
	Stock       int       `json:"stock"`
	Featured    bool      `json:"featured,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
