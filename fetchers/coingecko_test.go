package fetchers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/coinavg"
	"github.com/malusev998/coinavg/fetchers"
)

type marketChartHandler struct {
	mu     sync.Mutex
	status int
	body   string
	calls  int
	path   string
	query  map[string]string
	agent  string
}

func (h *marketChartHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.calls++
	h.path = request.URL.Path
	h.agent = request.Header.Get("User-Agent")
	h.query = make(map[string]string)

	for key := range request.URL.Query() {
		h.query[key] = request.URL.Query().Get(key)
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(h.status)
	_, _ = writer.Write([]byte(h.body))
}

func (h *marketChartHandler) requests() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.calls
}

func TestCoinGeckoFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("RetrievesMarketChart", func(t *testing.T) {
		asserts := require.New(t)
		handler := &marketChartHandler{
			status: http.StatusOK,
			body:   `{"prices":[[1700000000000,10.0],[1700086400000,20.0],[1700172800000,30.0]],"market_caps":[],"total_volumes":[]}`,
		}
		server := httptest.NewServer(handler)
		defer server.Close()

		fetcher := fetchers.NewFetcher(fetchers.Config{URL: server.URL, Interval: coinavg.DailyInterval})
		doc, err := fetcher.Fetch(context.Background(), "ethereum")

		asserts.NoError(err)
		asserts.Len(doc.Prices, 3)
		asserts.Equal(20.0, doc.Prices[1].Price)
		asserts.Equal(1, handler.requests())
		asserts.Equal("/coins/ethereum/market_chart", handler.path)
		asserts.Equal(map[string]string{"vs_currency": "usd", "days": "15", "interval": "daily"}, handler.query)
		asserts.Equal(fetchers.DefaultUserAgent, handler.agent)
	})

	t.Run("AutoIntervalOmitsParameter", func(t *testing.T) {
		asserts := require.New(t)
		handler := &marketChartHandler{status: http.StatusOK, body: `{"prices":[]}`}
		server := httptest.NewServer(handler)
		defer server.Close()

		fetcher := fetchers.NewFetcher(fetchers.Config{
			URL:      server.URL,
			Currency: "eur",
			Days:     30,
			Interval: coinavg.AutoInterval,
		})
		doc, err := fetcher.Fetch(context.Background(), "binancecoin")

		asserts.NoError(err)
		asserts.Empty(doc.Prices)
		asserts.Equal(1, handler.requests())
		asserts.Equal(map[string]string{"vs_currency": "eur", "days": "30"}, handler.query)
	})

	t.Run("HTTPStatusError", func(t *testing.T) {
		asserts := require.New(t)
		handler := &marketChartHandler{status: http.StatusNotFound, body: `{"error":"coin not found"}`}
		server := httptest.NewServer(handler)
		defer server.Close()

		fetcher := fetchers.NewFetcher(fetchers.Config{URL: server.URL, Interval: coinavg.DailyInterval})
		_, err := fetcher.Fetch(context.Background(), "not-a-coin")

		var statusErr *coinavg.HTTPStatusError
		asserts.True(errors.As(err, &statusErr))
		asserts.Equal(http.StatusNotFound, statusErr.StatusCode)
		asserts.True(errors.Is(err, coinavg.ErrClient))
		asserts.Contains(err.Error(), "404 Client Error: Not Found for url: "+server.URL+"/coins/not-a-coin/market_chart?")
		asserts.Equal(1, handler.requests())
	})

	t.Run("ServerErrorIsNotRetried", func(t *testing.T) {
		asserts := require.New(t)
		handler := &marketChartHandler{status: http.StatusServiceUnavailable}
		server := httptest.NewServer(handler)
		defer server.Close()

		fetcher := fetchers.NewFetcher(fetchers.Config{URL: server.URL})
		_, err := fetcher.Fetch(context.Background(), "ethereum")

		asserts.True(errors.Is(err, coinavg.ErrServer))
		asserts.Equal(1, handler.requests())
	})

	t.Run("DecodeError", func(t *testing.T) {
		asserts := require.New(t)
		handler := &marketChartHandler{status: http.StatusOK, body: `<html>not json</html>`}
		server := httptest.NewServer(handler)
		defer server.Close()

		fetcher := fetchers.NewFetcher(fetchers.Config{URL: server.URL})
		doc, err := fetcher.Fetch(context.Background(), "ethereum")

		var decodeErr *coinavg.DecodeError
		asserts.True(errors.As(err, &decodeErr))
		asserts.Empty(doc.Prices)
	})

	t.Run("NetworkError", func(t *testing.T) {
		asserts := require.New(t)
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		fetcher := fetchers.NewFetcher(fetchers.Config{URL: url, Timeout: 2 * time.Second})
		_, err := fetcher.Fetch(context.Background(), "ethereum")

		var netErr *coinavg.NetworkError
		asserts.True(errors.As(err, &netErr))
	})
}
