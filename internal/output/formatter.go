package output

import (
	"fmt"

	"github.com/WealthCreating/options-pricing/internal/domain"
)

// Formatter defines a pluggable output formatter that renders a price
// report as a byte slice. Implementations should be pure (no side effects
// besides deterministic formatting).
type Formatter interface {
	Format(report *domain.PriceReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// ByName returns the formatter registered under name.
func ByName(name string) (Formatter, error) {
	switch name {
	case "console", "":
		return ConsoleFormatter{}, nil
	case "csv":
		return CSVFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want console, csv or json)", name)
	}
}
