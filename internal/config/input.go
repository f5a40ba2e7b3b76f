package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// OptionType selects the payoff priced by a request.
type OptionType string

const (
	OptionCall OptionType = "call"
	OptionPut  OptionType = "put"
)

// PricingRequest is one option-pricing job as described in an input file.
// Market quantities are parsed as decimals so values written in the file
// round-trip exactly; the simulation itself runs on float64.
type PricingRequest struct {
	Name          string          `yaml:"name"`
	OptionType    OptionType      `yaml:"option_type"`
	Strike        decimal.Decimal `yaml:"strike"`
	Expiry        decimal.Decimal `yaml:"expiry"`
	Spot          decimal.Decimal `yaml:"spot"`
	Vol           decimal.Decimal `yaml:"vol"`
	Rate          decimal.Decimal `yaml:"rate"`
	NumberOfPaths int             `yaml:"number_of_paths"`
	Seed          uint64          `yaml:"seed"`
}

// InputFile is the top-level document: one or more pricing requests.
type InputFile struct {
	Requests []PricingRequest `yaml:"requests"`
}

// InputParser handles parsing of pricing request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates pricing requests from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*InputFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input InputFile
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput validates every request in the file.
func (ip *InputParser) ValidateInput(input *InputFile) error {
	if len(input.Requests) == 0 {
		return fmt.Errorf("no pricing requests provided")
	}

	for i := range input.Requests {
		if err := ip.validateRequest(&input.Requests[i]); err != nil {
			name := input.Requests[i].Name
			if name == "" {
				name = fmt.Sprintf("request %d", i+1)
			}
			return fmt.Errorf("%s validation failed: %w", name, err)
		}
	}
	return nil
}

func (ip *InputParser) validateRequest(req *PricingRequest) error {
	switch req.OptionType {
	case OptionCall, OptionPut:
	default:
		return fmt.Errorf("option_type must be %q or %q, got %q", OptionCall, OptionPut, req.OptionType)
	}
	// Strikes are deliberately unconstrained; a negative strike is legal.
	if req.Spot.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("spot must be positive, got %s", req.Spot)
	}
	if req.Expiry.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("expiry must be positive, got %s", req.Expiry)
	}
	if req.Vol.IsNegative() {
		return fmt.Errorf("vol must not be negative, got %s", req.Vol)
	}
	if req.NumberOfPaths <= 0 {
		return fmt.Errorf("number_of_paths must be positive, got %d", req.NumberOfPaths)
	}
	return nil
}
