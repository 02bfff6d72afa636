// Package config loads skinfinder settings from defaults, an optional TOML
// file, SKINFINDER_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/skinfinder/internal/catalog"
	"github.com/abhisek/skinfinder/internal/recommend"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "SKINFINDER"

// Config holds application configuration.
type Config struct {
	Service ServiceConfig
	Flavor  string
	Log     LogConfig
}

// ServiceConfig holds recommendation service settings.
type ServiceConfig struct {
	Provider    string
	URL         string
	Timeout     time.Duration
	ProductType string `mapstructure:"product_type"`
}

// LogConfig holds diagnostics settings.
type LogConfig struct {
	File    string
	Verbose bool
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"service":     "service.provider",
	"service-url": "service.url",
	"flavor":      "flavor",
	"log-file":    "log.file",
	"verbose":     "log.verbose",
}

// Load reads configuration. path overrides the default config file
// location; flags, when non-nil, are bound on top of everything else and
// only win when explicitly set.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	v := viper.New()

	def := recommend.DefaultConfig()
	v.SetDefault("service.provider", def.Provider)
	v.SetDefault("service.url", def.BaseURL)
	v.SetDefault("service.timeout", def.Timeout)
	v.SetDefault("service.product_type", def.ProductType)
	v.SetDefault("flavor", string(def.Flavor))
	v.SetDefault("log.file", DefaultLogFile())
	v.SetDefault("log.verbose", false)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(configHome(), "skinfinder"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path that does not exist is an error; the default
		// location is optional.
		if !errors.As(err, &notFound) || path != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Recommend converts the service settings into a recommend.Config.
func (c Config) Recommend() recommend.Config {
	flavor, err := c.FlavorValue()
	if err != nil {
		// Left as-is so Validate reports it.
		flavor = catalog.Flavor(c.Flavor)
	}
	return recommend.Config{
		Provider:    c.Service.Provider,
		BaseURL:     c.Service.URL,
		Timeout:     c.Service.Timeout,
		ProductType: c.Service.ProductType,
		Flavor:      flavor,
	}
}

// FlavorValue returns the parsed flavor.
func (c Config) FlavorValue() (catalog.Flavor, error) {
	return catalog.ParseFlavor(c.Flavor)
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if _, err := c.FlavorValue(); err != nil {
		return err
	}
	if err := c.Recommend().Validate(); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}

// DefaultLogFile returns $XDG_STATE_HOME/skinfinder/skinfinder.log, falling
// back to ~/.local/state.
func DefaultLogFile() string {
	return filepath.Join(stateHome(), "skinfinder", "skinfinder.log")
}

func configHome() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d
	}
	return filepath.Join(homeDir(), ".config")
}

func stateHome() string {
	if d := os.Getenv("XDG_STATE_HOME"); d != "" {
		return d
	}
	return filepath.Join(homeDir(), ".local", "state")
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "."
}
