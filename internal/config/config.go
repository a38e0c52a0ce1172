package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kjannette/trahn-ticker/internal/models"
)

const (
	CoinGeckoBaseURL = "https://api.coingecko.com"
	RefreshInterval  = 60 * time.Second
	SeparatorWidth   = 60
)

// DefaultAssets is the fixed watch list, by CoinGecko id.
var DefaultAssets = []models.AssetID{"bitcoin", "ethereum", "solana", "cardano", "ripple"}

// Config is fixed at build time. The tracker exposes no flags or
// environment variables; Load exists so callers get a private copy.
type Config struct {
	BaseURL         string
	Assets          []models.AssetID
	RefreshInterval time.Duration
}

func Load() *Config {
	assets := make([]models.AssetID, len(DefaultAssets))
	copy(assets, DefaultAssets)

	return &Config{
		BaseURL:         CoinGeckoBaseURL,
		Assets:          assets,
		RefreshInterval: RefreshInterval,
	}
}

func (c *Config) Validate() error {
	var errs []string

	if c.BaseURL == "" {
		errs = append(errs, "base URL is required")
	}
	if len(c.Assets) == 0 {
		errs = append(errs, "at least one asset is required")
	}
	for i, a := range c.Assets {
		if strings.TrimSpace(string(a)) == "" {
			errs = append(errs, fmt.Sprintf("asset %d is empty", i))
		}
	}
	if c.RefreshInterval <= 0 {
		errs = append(errs, "refresh interval must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Summary is the one-line startup description logged by cmd/tracker.
func (c *Config) Summary() string {
	ids := make([]string, len(c.Assets))
	for i, a := range c.Assets {
		ids[i] = string(a)
	}
	return fmt.Sprintf("tracking %s every %s via %s", strings.Join(ids, ","), c.RefreshInterval, c.BaseURL)
}
