package montecarlo

// VanillaOption pairs an expiry with a payoff. It is a value object: one is
// built per pricing request and never mutated.
type VanillaOption struct {
	expiry float64
	payoff Payoff
}

// NewVanillaOption returns an option exercising at expiry (in years) with
// the given payoff.
func NewVanillaOption(expiry float64, payoff Payoff) VanillaOption {
	return VanillaOption{expiry: expiry, payoff: payoff}
}

// Expiry returns the time to exercise in years.
func (o VanillaOption) Expiry() float64 {
	return o.expiry
}

// CalcPayoff evaluates the option's payoff at a terminal spot price.
func (o VanillaOption) CalcPayoff(spot float64) float64 {
	return o.payoff.Calc(spot)
}
