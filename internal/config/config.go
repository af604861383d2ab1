// Package config resolves the storefront client configuration from the
// environment. Each logical backend service has its own base URL, resolved
// once at startup and immutable thereafter.
package config

import (
	"fmt"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds the storefront configuration
type Config struct {
	Environment     string `env:"STOREFRONT_ENVIRONMENT,default=dev"`
	LogLevel        string `env:"STOREFRONT_LOG_LEVEL,default=debug"`
	CredentialsFile string `env:"STOREFRONT_CREDENTIALS_FILE"`

	UserServiceURL         string `env:"USER_SERVICE_URL,default=http://localhost:8000"`
	ProductServiceURL      string `env:"PRODUCT_SERVICE_URL,default=http://localhost:8001"`
	OrderServiceURL        string `env:"ORDER_SERVICE_URL,default=http://localhost:8002"`
	PaymentServiceURL      string `env:"PAYMENT_SERVICE_URL,default=http://localhost:8003"`
	CartServiceURL         string `env:"CART_SERVICE_URL,default=http://localhost:8004"`
	InventoryServiceURL    string `env:"INVENTORY_SERVICE_URL,default=http://localhost:8005"`
	NotificationServiceURL string `env:"NOTIFICATION_SERVICE_URL,default=http://localhost:8006"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

func NewConfig() (*Config, error) {
	// .env is optional: real deployments set the environment directly
	_ = godotenv.Load()

	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, staging, prod", cfg.Environment)
	}

	serviceURLs := map[string]string{
		"USER_SERVICE_URL":         cfg.UserServiceURL,
		"PRODUCT_SERVICE_URL":      cfg.ProductServiceURL,
		"ORDER_SERVICE_URL":        cfg.OrderServiceURL,
		"PAYMENT_SERVICE_URL":      cfg.PaymentServiceURL,
		"CART_SERVICE_URL":         cfg.CartServiceURL,
		"INVENTORY_SERVICE_URL":    cfg.InventoryServiceURL,
		"NOTIFICATION_SERVICE_URL": cfg.NotificationServiceURL,
	}

	for name, url := range serviceURLs {
		if url == "" {
			return fmt.Errorf("%s cannot be empty", name)
		}
	}

	return nil
}
