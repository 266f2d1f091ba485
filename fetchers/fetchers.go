package fetchers

import (
	"time"

	"github.com/malusev998/coinavg"
)

const (
	CoinGeckoURL     = "https://api.coingecko.com/api/v3"
	DefaultCurrency  = "usd"
	DefaultDays      = 15
	DefaultInterval  = coinavg.DailyInterval
	DefaultTimeout   = time.Minute
	DefaultUserAgent = "coinavg/1.0"

	marketChartPath = "/coins/{id}/market_chart"
)
