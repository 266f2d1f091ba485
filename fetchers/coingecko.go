package fetchers

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/malusev998/coinavg"
)

type CoinGeckoFetcher struct {
	client   *resty.Client
	currency string
	days     int
	interval coinavg.Interval
}

func (f *CoinGeckoFetcher) query() map[string]string {
	q := map[string]string{
		"vs_currency": f.currency,
		"days":        strconv.Itoa(f.days),
	}

	if f.interval != coinavg.AutoInterval {
		q["interval"] = string(f.interval)
	}

	return q
}

// Fetch issues a single GET for the coin's market chart. It never retries.
func (f *CoinGeckoFetcher) Fetch(ctx context.Context, id string) (coinavg.MarketDocument, error) {
	var doc coinavg.MarketDocument

	if ctx == nil {
		ctx = context.Background()
	}

	res, err := f.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetQueryParams(f.query()).
		Get(marketChartPath)

	if err != nil {
		return doc, &coinavg.NetworkError{Err: err}
	}

	if !res.IsSuccess() {
		return doc, &coinavg.HTTPStatusError{
			StatusCode: res.StatusCode(),
			URL:        requestURL(res),
		}
	}

	if err := json.Unmarshal(res.Body(), &doc); err != nil {
		return coinavg.MarketDocument{}, &coinavg.DecodeError{Err: err}
	}

	return doc, nil
}

func requestURL(res *resty.Response) string {
	if res.Request != nil && res.Request.RawRequest != nil {
		return res.Request.RawRequest.URL.String()
	}

	if res.Request != nil {
		return res.Request.URL
	}

	return ""
}
