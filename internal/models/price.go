package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetID is a CoinGecko coin id, e.g. "bitcoin".
type AssetID string

// Quote holds the market fields CoinGecko returns for one asset.
// Fields the upstream did not supply stay invalid / nil.
type Quote struct {
	USD           decimal.NullDecimal `json:"usd"`
	EUR           decimal.NullDecimal `json:"eur"`
	USDMarketCap  decimal.NullDecimal `json:"usd_market_cap"`
	USD24hVol     decimal.NullDecimal `json:"usd_24h_vol"`
	USD24hChange  decimal.NullDecimal `json:"usd_24h_change"`
	LastUpdatedAt *int64              `json:"last_updated_at"`
}

type AssetQuote struct {
	ID AssetID
	Quote
}

// Snapshot is one cycle's worth of quotes, in the order the API returned them.
type Snapshot struct {
	Assets []AssetQuote
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Assets)
}

// Get returns the quote for id, if present.
func (s *Snapshot) Get(id AssetID) (Quote, bool) {
	if s == nil {
		return Quote{}, false
	}
	for _, a := range s.Assets {
		if a.ID == id {
			return a.Quote, true
		}
	}
	return Quote{}, false
}

// UnmarshalJSON decodes the {"<id>": {...}, ...} response object while
// keeping key order, which a plain map would lose.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("snapshot: expected object, got %v", tok)
	}

	var assets []AssetQuote
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("snapshot: unexpected key %v", tok)
		}

		var q Quote
		if err := dec.Decode(&q); err != nil {
			return fmt.Errorf("snapshot %s: %w", key, err)
		}
		assets = append(assets, AssetQuote{ID: AssetID(key), Quote: q})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	s.Assets = assets
	return nil
}
