package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MasinARK/E-commerce/cart"
	"github.com/MasinARK/E-commerce/catalog"
	"github.com/MasinARK/E-commerce/checkout"
	"github.com/MasinARK/E-commerce/config"
	"github.com/MasinARK/E-commerce/models"
	"github.com/MasinARK/E-commerce/routes"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Msg("✅ Starting storefront...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Catalog: Postgres when configured, in-memory demo otherwise
	cat := initCatalog(cfg)

	// Per-session cart stores
	carts := cart.NewManager(cfg.TaxRateBP)

	// Checkout hand-off
	builder := &checkout.Builder{
		Catalog:           cat,
		Provider:          checkout.NewStripeClient(cfg.StripeAPIURL, cfg.StripeSecretKey),
		BaseURL:           cfg.BaseURL,
		ShippingCountries: cfg.ShippingCountries,
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog:  cat,
		Carts:    carts,
		Checkout: builder,
	})

	// Start server
	log.Info().Str("port", cfg.Port).Msg("🚀 Server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// initCatalog connects to Postgres when a database is configured and
// seeds an empty products table; without one it serves the demo
// catalog from memory.
func initCatalog(cfg config.Config) catalog.Catalog {
	if cfg.DatabaseURL == "" {
		log.Info().Msg("No DATABASE_URL set, serving in-memory demo catalog")
		return catalog.NewMemoryCatalog(catalog.DemoProducts())
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}

	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err == nil && count == 0 {
		products := catalog.DemoProducts()
		if err := db.Create(&products).Error; err != nil {
			log.Warn().Err(err).Msg("Failed to seed products")
		} else {
			log.Info().Msg("Seeded starter catalog")
		}
	}

	return catalog.NewPostgresCatalog(db)
}
