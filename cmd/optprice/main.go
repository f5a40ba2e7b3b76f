package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WealthCreating/options-pricing/internal/analytic"
	"github.com/WealthCreating/options-pricing/internal/config"
	"github.com/WealthCreating/options-pricing/internal/domain"
	"github.com/WealthCreating/options-pricing/internal/montecarlo"
	"github.com/WealthCreating/options-pricing/internal/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "optprice",
		Short:         "Monte Carlo pricer for European vanilla options",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPriceCmd())
	return root
}

func newPriceCmd() *cobra.Command {
	var (
		inputFile string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price the requests described in a YAML input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := output.ByName(format)
			if err != nil {
				return err
			}

			input, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			for i := range input.Requests {
				report, err := priceRequest(&input.Requests[i])
				if err != nil {
					return fmt.Errorf("pricing %s failed: %w", requestName(&input.Requests[i], i), err)
				}
				data, err := formatter.Format(report)
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "config", "c", "", "YAML file of pricing requests")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, csv or json")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func requestName(req *config.PricingRequest, index int) string {
	if req.Name != "" {
		return req.Name
	}
	return fmt.Sprintf("request %d", index+1)
}

// priceRequest runs one Monte Carlo pricing job and pairs it with the
// closed-form reference price.
func priceRequest(req *config.PricingRequest) (*domain.PriceReport, error) {
	var (
		strike = req.Strike.InexactFloat64()
		expiry = req.Expiry.InexactFloat64()
		spot   = req.Spot.InexactFloat64()
		vol    = req.Vol.InexactFloat64()
		rate   = req.Rate.InexactFloat64()
	)

	var (
		table *montecarlo.ConvergenceTable
		err   error
	)
	switch req.OptionType {
	case config.OptionCall:
		table, err = montecarlo.CallPriceStats(strike, expiry, spot, vol, rate, req.NumberOfPaths, req.Seed)
	case config.OptionPut:
		table, err = montecarlo.PutPriceStats(strike, expiry, spot, vol, rate, req.NumberOfPaths, req.Seed)
	default:
		err = fmt.Errorf("unsupported option type %q", req.OptionType)
	}
	if err != nil {
		return nil, err
	}

	results, err := table.ResultsSoFar()
	if err != nil {
		return nil, err
	}
	rows := domain.RowsFromResults(results)

	report := &domain.PriceReport{
		Name:          req.Name,
		OptionType:    string(req.OptionType),
		Strike:        strike,
		Expiry:        expiry,
		Spot:          spot,
		Vol:           vol,
		Rate:          rate,
		NumberOfPaths: req.NumberOfPaths,
		Seed:          req.Seed,
		Rows:          rows,
		Estimate:      rows[len(rows)-1].Values[0],
	}

	// The closed-form reference only exists inside Black-Scholes' domain;
	// the simulation itself accepts payoffs the formula cannot price, such
	// as negative strikes, so those reports simply omit the reference.
	var reference float64
	var refErr error
	switch req.OptionType {
	case config.OptionCall:
		reference, refErr = analytic.CallPrice(spot, strike, rate, vol, expiry)
	case config.OptionPut:
		reference, refErr = analytic.PutPrice(spot, strike, rate, vol, expiry)
	}
	if refErr == nil {
		report.AnalyticPrice = &reference
	} else if !errors.Is(refErr, analytic.ErrInvalidInputs) {
		return nil, refErr
	}

	return report, nil
}
