package output

import (
	"encoding/json"

	"github.com/WealthCreating/options-pricing/internal/domain"
)

// JSONFormatter serializes the price report as pretty-printed JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.PriceReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
