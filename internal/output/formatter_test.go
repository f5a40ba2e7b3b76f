package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WealthCreating/options-pricing/internal/domain"
)

func sampleReport() *domain.PriceReport {
	reference := 15.177
	return &domain.PriceReport{
		Name:          "itm-call",
		OptionType:    "call",
		Strike:        15,
		Expiry:        0.25,
		Spot:          30.14,
		Vol:           0.332,
		Rate:          0.01,
		NumberOfPaths: 8,
		Seed:          1234,
		Rows: []domain.ConvergenceRow{
			{Values: []float64{15.1}, PathsUsed: 2},
			{Values: []float64{15.3}, PathsUsed: 4},
			{Values: []float64{15.2}, PathsUsed: 8},
		},
		Estimate:      15.2,
		AnalyticPrice: &reference,
	}
}

func TestByName(t *testing.T) {
	for name, want := range map[string]string{
		"console": "console",
		"":        "console",
		"csv":     "csv",
		"json":    "json",
	} {
		f, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, want, f.Name())
	}

	_, err := ByName("xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleReport())
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "CALL itm-call")
	assert.Contains(t, text, "paths=8")
	assert.Contains(t, text, "seed=1234")
	assert.Contains(t, text, "monte carlo price: 15.200000")
	assert.Contains(t, text, "black-scholes ref: 15.177000")
	// One line per convergence row.
	assert.Contains(t, text, "15.100000")
	assert.Contains(t, text, "15.300000")
}

func TestConsoleFormatterWithoutAnalyticReference(t *testing.T) {
	report := sampleReport()
	report.AnalyticPrice = nil

	data, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "monte carlo price: 15.200000")
	assert.NotContains(t, text, "black-scholes ref")
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "PathsUsed,Estimate", lines[0])
	assert.Equal(t, "2,15.100000", lines[1])
	assert.Equal(t, "8,15.200000", lines[3])
}

func TestCSVFormatterMultiValuedRows(t *testing.T) {
	report := sampleReport()
	report.Rows = []domain.ConvergenceRow{
		{Values: []float64{15.1, 0.05}, PathsUsed: 2},
	}

	data, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "PathsUsed,Estimate,Value2", lines[0])
	assert.Equal(t, "2,15.100000,0.050000", lines[1])
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	var decoded domain.PriceReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "itm-call", decoded.Name)
	assert.Equal(t, 15.2, decoded.Estimate)
	require.Len(t, decoded.Rows, 3)
	assert.Equal(t, 8, decoded.Rows[2].PathsUsed)
	require.NotNil(t, decoded.AnalyticPrice)
	assert.Equal(t, 15.177, *decoded.AnalyticPrice)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "15.195390", FormatPrice(15.195389688817))
	assert.Equal(t, "0.3320", FormatRate(0.332))
}
