package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "BASE_URL", "TAX_RATE_BP", "SHIPPING_COUNTRIES",
		"STRIPE_API_URL", "DATABASE_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != DefaultPort {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.TaxRateBP != DefaultTaxRateBP {
		t.Fatalf("tax rate = %d", cfg.TaxRateBP)
	}
	if len(cfg.ShippingCountries) != 3 ||
		cfg.ShippingCountries[0] != "US" ||
		cfg.ShippingCountries[1] != "CA" ||
		cfg.ShippingCountries[2] != "GB" {
		t.Fatalf("shipping countries = %v", cfg.ShippingCountries)
	}
	if cfg.StripeAPIURL != DefaultStripeAPIURL {
		t.Fatalf("stripe url = %q", cfg.StripeAPIURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TAX_RATE_BP", "825")
	t.Setenv("SHIPPING_COUNTRIES", "us, de")
	t.Setenv("PORT", "9090")

	cfg := Load()
	if cfg.TaxRateBP != 825 {
		t.Fatalf("tax rate = %d", cfg.TaxRateBP)
	}
	if len(cfg.ShippingCountries) != 2 || cfg.ShippingCountries[0] != "US" || cfg.ShippingCountries[1] != "DE" {
		t.Fatalf("shipping countries = %v", cfg.ShippingCountries)
	}
	if cfg.Port != "9090" {
		t.Fatalf("port = %q", cfg.Port)
	}
}

func TestLoadRejectsBadTaxRate(t *testing.T) {
	t.Setenv("TAX_RATE_BP", "not-a-number")
	if cfg := Load(); cfg.TaxRateBP != DefaultTaxRateBP {
		t.Fatalf("tax rate = %d, want default", cfg.TaxRateBP)
	}
}
