package recommend

import (
	"fmt"
	"log/slog"
)

// New creates a Service from configuration, wrapped with call logging.
func New(cfg Config, logger *slog.Logger, opts ...Option) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Service
	switch cfg.Provider {
	case "http":
		base = NewHTTPService(cfg, opts...)
	case "mock":
		base = NewDemoService(cfg.Flavor)
	default:
		return nil, fmt.Errorf("unknown service provider: %q", cfg.Provider)
	}

	return WithLogging(base, logger), nil
}
