package cmd

import (
	"fmt"
	"log"

	"github.com/malusev998/coinavg"
	"github.com/malusev998/coinavg/services"
)

const dateFormat = "2006-01-02"

func reportLine(report coinavg.Report, days int) string {
	switch {
	case report.Err != nil:
		return fmt.Sprintf("Error fetching data for %s: %v.", report.ID, report.Err)
	case !report.Average.Valid:
		return fmt.Sprintf("No price data found for %s.", report.ID)
	}

	return fmt.Sprintf("The average price of %s over the past %d days is: $%s", report.ID, days, services.FormatPrice(report.Average.Value))
}

func writeReports(logger, debugLogger *log.Logger, days int, reports []coinavg.Report) {
	for i, report := range reports {
		if report.Err == nil {
			debugLogger.Printf("%d\t%s: %d prices from %s to %s", i, report.ID, report.Points,
				report.First.Format(dateFormat), report.Last.Format(dateFormat))
		} else {
			debugLogger.Printf("%d\t%s: %T", i, report.ID, report.Err)
		}

		logger.Println(reportLine(report, days))
	}
}
