// Package analytic provides closed-form Black-Scholes prices for European
// vanilla options, used as a reference against Monte Carlo estimates.
package analytic

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInputs reports non-positive spot/strike, a negative volatility
// or a negative expiry.
var ErrInvalidInputs = errors.New("analytic: invalid inputs")

// CallPrice returns the Black-Scholes price of a European call with no
// dividends. spot and strike are in the same currency units, rate and vol
// are annualized, expiry is in years.
func CallPrice(spot, strike, rate, vol, expiry float64) (float64, error) {
	if err := validateInputs(spot, strike, vol, expiry); err != nil {
		return 0, err
	}
	// At expiry the option is worth its intrinsic value.
	if expiry == 0 {
		return math.Max(spot-strike, 0), nil
	}
	// With no volatility the terminal spot is deterministic.
	if vol == 0 {
		return math.Max(spot-strike*math.Exp(-rate*expiry), 0), nil
	}
	d1, d2 := dTerms(spot, strike, rate, vol, expiry)
	return spot*normCDF(d1) - strike*math.Exp(-rate*expiry)*normCDF(d2), nil
}

// PutPrice returns the Black-Scholes price of a European put with no
// dividends.
func PutPrice(spot, strike, rate, vol, expiry float64) (float64, error) {
	if err := validateInputs(spot, strike, vol, expiry); err != nil {
		return 0, err
	}
	if expiry == 0 {
		return math.Max(strike-spot, 0), nil
	}
	if vol == 0 {
		return math.Max(strike*math.Exp(-rate*expiry)-spot, 0), nil
	}
	d1, d2 := dTerms(spot, strike, rate, vol, expiry)
	return strike*math.Exp(-rate*expiry)*normCDF(-d2) - spot*normCDF(-d1), nil
}

// ParityGap returns call - put - (spot - strike*exp(-rate*expiry)); prices
// satisfying put-call parity give zero.
func ParityGap(call, put, spot, strike, rate, expiry float64) float64 {
	return call - put - (spot - strike*math.Exp(-rate*expiry))
}

func validateInputs(spot, strike, vol, expiry float64) error {
	if spot <= 0 || strike <= 0 || vol < 0 || expiry < 0 {
		return fmt.Errorf("%w: spot=%g strike=%g vol=%g expiry=%g", ErrInvalidInputs, spot, strike, vol, expiry)
	}
	return nil
}

func dTerms(spot, strike, rate, vol, expiry float64) (float64, float64) {
	d1 := (math.Log(spot/strike) + (rate+0.5*vol*vol)*expiry) / (vol * math.Sqrt(expiry))
	return d1, d1 - vol*math.Sqrt(expiry)
}

func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
