// Package domain holds the value types shared between the pricing engine's
// callers and the output formatters.
package domain

// ConvergenceRow is one sampled state of a running statistic: the statistic
// values and the number of paths they were computed over. A mean estimate
// has a single value; richer gatherers may carry more columns.
type ConvergenceRow struct {
	Values    []float64 `json:"values"`
	PathsUsed int       `json:"paths_used"`
}

// PriceReport is one priced request ready for rendering: the request echo,
// the convergence rows, the final Monte Carlo estimate and, when the inputs
// lie inside Black-Scholes' domain, the closed-form reference price.
type PriceReport struct {
	Name          string           `json:"name,omitempty"`
	OptionType    string           `json:"option_type"`
	Strike        float64          `json:"strike"`
	Expiry        float64          `json:"expiry"`
	Spot          float64          `json:"spot"`
	Vol           float64          `json:"vol"`
	Rate          float64          `json:"rate"`
	NumberOfPaths int              `json:"number_of_paths"`
	Seed          uint64           `json:"seed,omitempty"`
	Rows          []ConvergenceRow `json:"convergence"`
	Estimate      float64          `json:"estimate"`
	// AnalyticPrice is nil for payoffs the closed-form model cannot price,
	// such as negative strikes.
	AnalyticPrice *float64 `json:"analytic_price,omitempty"`
}

// RowsFromResults converts raw gatherer result rows, whose trailing element
// is the path count, into typed convergence rows.
func RowsFromResults(results [][]float64) []ConvergenceRow {
	rows := make([]ConvergenceRow, 0, len(results))
	for _, r := range results {
		if len(r) < 2 {
			continue
		}
		n := len(r) - 1
		rows = append(rows, ConvergenceRow{
			Values:    append([]float64(nil), r[:n]...),
			PathsUsed: int(r[n]),
		})
	}
	return rows
}
