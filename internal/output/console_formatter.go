package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/WealthCreating/options-pricing/internal/domain"
)

// ConsoleFormatter renders a price report as a plain-text convergence table.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.PriceReport) ([]byte, error) {
	buf := &bytes.Buffer{}

	title := strings.ToUpper(report.OptionType)
	if report.Name != "" {
		title += " " + report.Name
	}
	fmt.Fprintln(buf, title)
	fmt.Fprintf(buf, "strike=%s expiry=%s spot=%s vol=%s rate=%s paths=%d",
		FormatRate(report.Strike), FormatRate(report.Expiry), FormatRate(report.Spot),
		FormatRate(report.Vol), FormatRate(report.Rate), report.NumberOfPaths)
	if report.Seed != 0 {
		fmt.Fprintf(buf, " seed=%d", report.Seed)
	}
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "%12s  %s\n", "paths", "estimate")
	for _, row := range report.Rows {
		fmt.Fprintf(buf, "%12d", row.PathsUsed)
		for _, v := range row.Values {
			fmt.Fprintf(buf, "  %s", FormatPrice(v))
		}
		fmt.Fprintln(buf)
	}

	fmt.Fprintf(buf, "monte carlo price: %s\n", FormatPrice(report.Estimate))
	if report.AnalyticPrice != nil {
		fmt.Fprintf(buf, "black-scholes ref: %s\n", FormatPrice(*report.AnalyticPrice))
	}
	return buf.Bytes(), nil
}
