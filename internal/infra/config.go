package infra

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration. Secrets are never stored
// in the YAML file; they are injected through environment variables after
// loading. Treated as immutable once LoadConfig returns.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	API struct {
		Coinbase struct {
			RestURL    string `yaml:"rest_url"`
			AccessKey  string `yaml:"access_key"`
			SecretKey  string `yaml:"secret_key"` // base64-encoded, as issued by Coinbase
			Passphrase string `yaml:"passphrase"`
		} `yaml:"coinbase"`
	} `yaml:"api"`

	Trade struct {
		SizeUSD decimal.Decimal `yaml:"size_usd"`
	} `yaml:"trade"`

	Journal struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"journal"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads the configuration file, applies environment overrides and
// validates the result.
func LoadConfig(path string) (*Config, error) {
	// Load .env if present; silently ignore when missing.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.API.Coinbase.RestURL == "" {
		cfg.API.Coinbase.RestURL = "https://api.coinbase.com"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 10000
	}
	if cfg.Journal.Enabled && cfg.Journal.Path == "" {
		cfg.Journal.Path = "data/relay.db"
	}
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	cb := c.API.Coinbase
	if !hasPrefix(cb.RestURL, "http://") && !hasPrefix(cb.RestURL, "https://") {
		return fmt.Errorf("invalid Coinbase REST URL: %s", cb.RestURL)
	}
	if cb.AccessKey == "" {
		return fmt.Errorf("coinbase access key is required (CB_API_KEY)")
	}
	if cb.SecretKey == "" {
		return fmt.Errorf("coinbase secret key is required (CB_API_SECRET)")
	}
	if cb.Passphrase == "" {
		return fmt.Errorf("coinbase passphrase is required (CB_API_PASSPHRASE)")
	}
	if !c.Trade.SizeUSD.IsPositive() {
		return fmt.Errorf("trade size must be positive, got %s", c.Trade.SizeUSD)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[0:len(prefix)] == prefix
}

// overrideWithEnv overwrites config values from environment variables when
// set. The CB_* names match what the Coinbase deployment docs use.
func overrideWithEnv(cfg *Config) {
	if key := os.Getenv("CB_API_KEY"); key != "" {
		cfg.API.Coinbase.AccessKey = key
	}
	if secret := os.Getenv("CB_API_SECRET"); secret != "" {
		cfg.API.Coinbase.SecretKey = secret
	}
	if pass := os.Getenv("CB_API_PASSPHRASE"); pass != "" {
		cfg.API.Coinbase.Passphrase = pass
	}
	if size := os.Getenv("TRADE_SIZE"); size != "" {
		if d, err := decimal.NewFromString(size); err == nil {
			cfg.Trade.SizeUSD = d
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
}
