package montecarlo

import (
	"fmt"
	"math"
)

// Parameters is a deterministic function of time used for model inputs such
// as volatility and the risk-free rate. The simulation only ever needs the
// two integrals below: the plain integral drives drift and discounting, the
// integral of the square drives variance.
type Parameters interface {
	Integral(t1, t2 float64) float64
	IntegralSquare(t1, t2 float64) float64
}

// ConstantParameter takes a single value at all times. The square is
// precomputed because IntegralSquare sits on the pricing path.
type ConstantParameter struct {
	value   float64
	squared float64
}

// NewConstantParameter returns a parameter equal to value at every time.
func NewConstantParameter(value float64) ConstantParameter {
	return ConstantParameter{value: value, squared: value * value}
}

// Integral returns (t2 - t1) * value. A reversed interval flips the sign,
// consistent with linear integration.
func (p ConstantParameter) Integral(t1, t2 float64) float64 {
	return (t2 - t1) * p.value
}

// IntegralSquare returns (t2 - t1) * value².
func (p ConstantParameter) IntegralSquare(t1, t2 float64) float64 {
	return (t2 - t1) * p.squared
}

// PiecewiseConstantParameter is a step function of time, useful for term
// structures of volatility or rates. values[i] applies from times[i] up to
// times[i+1]; the first value extends back before the first knot and the
// last value extends forward indefinitely.
type PiecewiseConstantParameter struct {
	times  []float64
	values []float64
}

// NewPiecewiseConstantParameter builds a step function from strictly
// increasing knot times and their matching values.
func NewPiecewiseConstantParameter(times, values []float64) (PiecewiseConstantParameter, error) {
	if len(times) == 0 || len(times) != len(values) {
		return PiecewiseConstantParameter{}, fmt.Errorf("montecarlo: need matching non-empty knot times and values, got %d times and %d values", len(times), len(values))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return PiecewiseConstantParameter{}, fmt.Errorf("montecarlo: knot times must be strictly increasing, got %g after %g", times[i], times[i-1])
		}
	}
	return PiecewiseConstantParameter{
		times:  append([]float64(nil), times...),
		values: append([]float64(nil), values...),
	}, nil
}

func (p PiecewiseConstantParameter) Integral(t1, t2 float64) float64 {
	return p.integrate(t1, t2, func(v float64) float64 { return v })
}

func (p PiecewiseConstantParameter) IntegralSquare(t1, t2 float64) float64 {
	return p.integrate(t1, t2, func(v float64) float64 { return v * v })
}

func (p PiecewiseConstantParameter) integrate(t1, t2 float64, f func(float64) float64) float64 {
	if t1 > t2 {
		return -p.integrate(t2, t1, f)
	}
	var total float64
	for i, v := range p.values {
		start := math.Inf(-1)
		if i > 0 {
			start = p.times[i]
		}
		end := math.Inf(1)
		if i < len(p.times)-1 {
			end = p.times[i+1]
		}
		lo := math.Max(t1, start)
		hi := math.Min(t2, end)
		if hi > lo {
			total += (hi - lo) * f(v)
		}
	}
	return total
}
