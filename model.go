package coinavg

import (
	"encoding/json"
	"fmt"
	"time"
)

type (
	// MarketDocument is the subset of the market_chart response that is consumed.
	// A missing or null "prices" field decodes to an empty series.
	MarketDocument struct {
		Prices []PricePoint `json:"prices"`
	}

	PricePoint struct {
		Timestamp float64
		Price     float64
	}

	// AverageResult is the mean of a price series. Valid is false when the
	// series was empty.
	AverageResult struct {
		Value float64
		Valid bool
	}

	Report struct {
		ID      string
		Average AverageResult
		Points  int
		First   time.Time
		Last    time.Time
		Err     error
	}
)

func (p *PricePoint) UnmarshalJSON(data []byte) error {
	var pair []*float64

	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	if len(pair) < 2 {
		return fmt.Errorf("price point needs [timestamp, price], got %d values", len(pair))
	}

	if pair[0] == nil || pair[1] == nil {
		return fmt.Errorf("price point %s has a null value", data)
	}

	p.Timestamp = *pair[0]
	p.Price = *pair[1]

	return nil
}

// Time returns the point's timestamp, which CoinGecko sends in milliseconds.
func (p PricePoint) Time() time.Time {
	return time.UnixMilli(int64(p.Timestamp)).UTC()
}
