package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/WealthCreating/options-pricing/internal/domain"
)

// CSVFormatter writes the convergence table as CSV, one row per sampled
// path count. The first value column is always the price estimate; any
// further columns from richer gatherers are labelled Value2, Value3, ...
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.PriceReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"PathsUsed", "Estimate"}
	if len(report.Rows) > 0 {
		for i := 1; i < len(report.Rows[0].Values); i++ {
			header = append(header, fmt.Sprintf("Value%d", i+1))
		}
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range report.Rows {
		record := []string{fmt.Sprintf("%d", row.PathsUsed)}
		for _, v := range row.Values {
			record = append(record, FormatPrice(v))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
