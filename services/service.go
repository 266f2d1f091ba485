package services

import (
	"context"

	"github.com/malusev998/coinavg"
)

type Service struct {
	Fetcher coinavg.Fetcher
}

// Average fetches and averages a single id. Fetch failures are returned in
// the report, never as a separate error.
func (s Service) Average(ctx context.Context, id string) coinavg.Report {
	doc, err := s.Fetcher.Fetch(ctx, id)

	if err != nil {
		return coinavg.Report{ID: id, Err: err}
	}

	report := coinavg.Report{
		ID:      id,
		Average: Mean(doc),
		Points:  len(doc.Prices),
	}

	if report.Points > 0 {
		report.First = doc.Prices[0].Time()
		report.Last = doc.Prices[report.Points-1].Time()
	}

	return report
}

// AverageAll processes ids one at a time, in order. A failure is recorded in
// that id's report and the remaining ids are still processed.
func (s Service) AverageAll(ctx context.Context, ids []string) []coinavg.Report {
	reports := make([]coinavg.Report, 0, len(ids))

	for _, id := range ids {
		reports = append(reports, s.Average(ctx, id))
	}

	return reports
}
