package montecarlo

import "math"

// Payoff computes the terminal cash value of an option for a given spot
// price. Implementations must be pure functions of the spot.
type Payoff interface {
	Calc(spot float64) float64
}

// CallPayoff pays max(spot - strike, 0).
type CallPayoff struct {
	Strike float64
}

func (p CallPayoff) Calc(spot float64) float64 {
	return math.Max(spot-p.Strike, 0)
}

// PutPayoff pays max(strike - spot, 0).
type PutPayoff struct {
	Strike float64
}

func (p PutPayoff) Calc(spot float64) float64 {
	return math.Max(p.Strike-spot, 0)
}

// DoubleDigitalPayoff pays one unit when the terminal spot lands strictly
// between the two levels. A spot exactly on either level pays nothing; the
// strict exclusion is part of the contract, not a rounding artifact.
type DoubleDigitalPayoff struct {
	Lower float64
	Upper float64
}

func (p DoubleDigitalPayoff) Calc(spot float64) float64 {
	if spot <= p.Lower || spot >= p.Upper {
		return 0
	}
	return 1
}
