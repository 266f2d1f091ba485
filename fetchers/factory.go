package fetchers

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/malusev998/coinavg"
)

type Config struct {
	URL       string
	Currency  string
	Days      int
	Interval  coinavg.Interval
	Timeout   time.Duration
	UserAgent string
}

// NewFetcher builds a CoinGecko market_chart fetcher. Zero values in config
// fall back to the package defaults, except Interval where the zero value
// means the API picks the granularity.
func NewFetcher(config Config) *CoinGeckoFetcher {
	if config.URL == "" {
		config.URL = CoinGeckoURL
	}

	if config.Currency == "" {
		config.Currency = DefaultCurrency
	}

	if config.Days <= 0 {
		config.Days = DefaultDays
	}

	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	client := resty.New().
		SetBaseURL(config.URL).
		SetTimeout(config.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", config.UserAgent)

	return &CoinGeckoFetcher{
		client:   client,
		currency: config.Currency,
		days:     config.Days,
		interval: config.Interval,
	}
}
