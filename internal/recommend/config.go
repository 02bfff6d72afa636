package recommend

import (
	"fmt"
	"net/url"
	"time"

	"github.com/abhisek/skinfinder/internal/catalog"
)

// Config holds prediction service configuration.
type Config struct {
	// Provider selects the Service implementation.
	// Values: "http", "mock"
	Provider string

	// BaseURL is the service root; /predict and /filter-products are
	// appended to it.
	BaseURL string

	// Timeout bounds a single request. Zero disables the timeout.
	Timeout time.Duration

	// ProductType is sent as product_type with every prediction.
	ProductType string

	// Flavor decides the request shape and concern vocabulary.
	Flavor catalog.Flavor
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:    "http",
		BaseURL:     "https://skincareprod.pythonanywhere.com",
		Timeout:     30 * time.Second,
		ProductType: catalog.ProductType,
		Flavor:      catalog.FlavorClassic,
	}
}

// Validate checks the config is usable by New.
func (c Config) Validate() error {
	switch c.Provider {
	case "http":
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid service URL %q: %w", c.BaseURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("service URL must be http or https, got %q", c.BaseURL)
		}
		if u.Host == "" {
			return fmt.Errorf("service URL has no host: %q", c.BaseURL)
		}
	case "mock":
		// No URL needed.
	default:
		return fmt.Errorf("unknown service provider: %q", c.Provider)
	}

	if _, err := catalog.ParseFlavor(string(c.Flavor)); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.ProductType == "" {
		return fmt.Errorf("product type must not be empty")
	}
	return nil
}
