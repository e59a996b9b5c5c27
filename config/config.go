package config

import (
	"os"
	"strconv"
	"strings"
)

// Defaults for the storefront's money and checkout policy.
const (
	// DefaultTaxRateBP is the flat sales tax rate in basis points (10%).
	DefaultTaxRateBP = 1000

	// DefaultShippingCountries is the checkout shipping allow-list.
	DefaultShippingCountries = "US,CA,GB"

	DefaultPort         = "8080"
	DefaultBaseURL      = "http://localhost:3000"
	DefaultStripeAPIURL = "https://api.stripe.com/v1/checkout/sessions"
)

// Config carries everything main wires into the HTTP layer. Values come
// from the environment with the documented defaults above.
type Config struct {
	Port    string
	BaseURL string

	TaxRateBP         int64
	ShippingCountries []string

	StripeSecretKey string
	StripeAPIURL    string

	JWTSecret   string
	AdminAPIKey string

	DatabaseURL string
}

// Load reads the configuration from the environment.
func Load() Config {
	cfg := Config{
		Port:            getenv("PORT", DefaultPort),
		BaseURL:         getenv("BASE_URL", DefaultBaseURL),
		TaxRateBP:       DefaultTaxRateBP,
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripeAPIURL:    getenv("STRIPE_API_URL", DefaultStripeAPIURL),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AdminAPIKey:     os.Getenv("ADMIN_API_KEY"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
	}

	if v := os.Getenv("TAX_RATE_BP"); v != "" {
		if bp, err := strconv.ParseInt(v, 10, 64); err == nil && bp >= 0 {
			cfg.TaxRateBP = bp
		}
	}

	for _, c := range strings.Split(getenv("SHIPPING_COUNTRIES", DefaultShippingCountries), ",") {
		if c = strings.TrimSpace(c); c != "" {
			cfg.ShippingCountries = append(cfg.ShippingCountries, strings.ToUpper(c))
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
