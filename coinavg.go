package coinavg

import "context"

type (
	Fetcher interface {
		Fetch(ctx context.Context, id string) (MarketDocument, error)
	}

	Service interface {
		AverageAll(ctx context.Context, ids []string) []Report
	}
)

// DefaultIDs are the coins averaged when nothing else is configured.
var DefaultIDs = []string{"matic-network", "avalanche-2", "ethereum", "binancecoin"}
