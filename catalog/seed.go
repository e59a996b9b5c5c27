package catalog

import "github.com/MasinARK/E-commerce/models"

// DemoProducts is the starter catalog: served directly in demo mode
// and inserted into an empty products table on first boot.
func DemoProducts() []models.Product {
	return []models.Product{
		{
			ID:          "prod_classic_tee",
			Name:        "Classic Tee",
			Description: "Heavyweight cotton t-shirt with a relaxed fit.",
			Price:       1999,
			Images:      []string{"/images/classic-tee-front.jpg", "/images/classic-tee-back.jpg"},
			Category:    "apparel",
			Stock:       120,
			Featured:    true,
		},
		{
			ID:          "prod_canvas_tote",
			Name:        "Canvas Tote",
			Description: "Everyday tote bag in natural canvas.",
			Price:       2450,
			Images:      []string{"/images/canvas-tote.jpg"},
			Category:    "accessories",
			Stock:       80,
		},
		{
			ID:          "prod_enamel_mug",
			Name:        "Enamel Mug",
			Description: "12oz enamel camp mug, dishwasher safe.",
			Price:       1450,
			Images:      []string{"/images/enamel-mug.jpg"},
			Category:    "homeware",
			Stock:       200,
			Featured:    true,
		},
		{
			ID:          "prod_wool_beanie",
			Name:        "Wool Beanie",
			Description: "Ribbed merino wool beanie.",
			Price:       2900,
			Images:      []string{"/images/wool-beanie.jpg"},
			Category:    "apparel",
			Stock:       45,
		},
		{
			ID:          "prod_sticker_pack",
			Name:        "Sticker Pack",
			Description: "Set of six vinyl stickers.",
			Price:       650,
			Images:      []string{"/images/sticker-pack.jpg"},
			Category:    "accessories",
			Stock:       500,
		},
	}
}
