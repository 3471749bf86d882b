package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	AppPort           string
	MarketplaceAPIURL string
	ShippingAPIURL    string
	CarrierID         string
}

// Load reads the service configuration from the environment, with
// local-friendly defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:            os.Getenv("APP_ENV"),
		AppPort:           getenvDefault("APP_PORT", "8080"),
		MarketplaceAPIURL: getenvDefault("MARKETPLACE_API_URL", "http://localhost:9000"),
		ShippingAPIURL:    getenvDefault("SHIPPING_API_URL", "http://localhost:9100"),
		CarrierID:         os.Getenv("SHIPPING_CARRIER_ID"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
