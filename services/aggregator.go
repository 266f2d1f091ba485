package services

import (
	"github.com/malusev998/coinavg"
)

// Mean averages the prices of the document. An empty or missing series is
// reported as an invalid result, never as an error.
func Mean(doc coinavg.MarketDocument) coinavg.AverageResult {
	if len(doc.Prices) == 0 {
		return coinavg.AverageResult{}
	}

	var sum float64

	for _, point := range doc.Prices {
		sum += point.Price
	}

	return coinavg.AverageResult{
		Value: sum / float64(len(doc.Prices)),
		Valid: true,
	}
}
