package config

import (
	"strings"
	"testing"
	"time"

	"github.com/kjannette/trahn-ticker/internal/models"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.RefreshInterval != 60*time.Second {
		t.Fatalf("expected 60s interval, got %s", cfg.RefreshInterval)
	}
	want := []models.AssetID{"bitcoin", "ethereum", "solana", "cardano", "ripple"}
	if len(cfg.Assets) != len(want) {
		t.Fatalf("expected %d assets, got %d", len(want), len(cfg.Assets))
	}
	for i := range want {
		if cfg.Assets[i] != want[i] {
			t.Fatalf("asset %d: got %s, want %s", i, cfg.Assets[i], want[i])
		}
	}
}

func TestLoad_ReturnsCopy(t *testing.T) {
	cfg := Load()
	cfg.Assets[0] = "dogecoin"

	if DefaultAssets[0] != "bitcoin" {
		t.Fatalf("Load must not share the default asset list, got %s", DefaultAssets[0])
	}
}

func TestValidate_Errors(t *testing.T) {
	cfg := &Config{Assets: []models.AssetID{" "}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, frag := range []string{"base URL", "asset 0 is empty", "refresh interval"} {
		if !strings.Contains(err.Error(), frag) {
			t.Fatalf("error %q missing %q", err, frag)
		}
	}
}

func TestSummary(t *testing.T) {
	cfg := &Config{
		BaseURL:         "http://localhost",
		Assets:          []models.AssetID{"bitcoin", "ethereum"},
		RefreshInterval: time.Minute,
	}
	got := cfg.Summary()
	if got != "tracking bitcoin,ethereum every 1m0s via http://localhost" {
		t.Fatalf("unexpected summary: %s", got)
	}
}
