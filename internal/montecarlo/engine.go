package montecarlo

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Engine prices options by simulating terminal spot prices under lognormal
// dynamics. Each engine owns its normal-variate source, so independent
// engines can price concurrently; a single engine must not be shared across
// goroutines.
type Engine struct {
	normal distuv.Normal
	logger Logger
}

// NewEngine returns an engine with a deterministically seeded source: the
// same seed reproduces the exact sequence of draws and therefore bit-for-bit
// identical statistics. Seed 0 selects ambient entropy.
func NewEngine(seed uint64) *Engine {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewEngineFromSource(rand.NewSource(seed))
}

// NewEngineFromSource builds an engine around a caller-owned random source.
func NewEngineFromSource(src rand.Source) *Engine {
	return &Engine{
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		logger: NopLogger{},
	}
}

// SetLogger replaces the default no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// OptionPrice runs numberOfPaths terminal-spot draws for option and feeds
// each discounted payoff to the gatherer. Drift, variance and the discount
// factor are computed once up front; the loop itself only draws a standard
// normal, exponentiates and evaluates the payoff.
//
// Path order is strictly sequential, so a fixed source yields a fully
// reproducible stream of results.
func (e *Engine) OptionPrice(option VanillaOption, spot float64, vol, rate Parameters, numberOfPaths int, gatherer Gatherer) error {
	if numberOfPaths <= 0 {
		return fmt.Errorf("montecarlo: number of paths must be positive, got %d", numberOfPaths)
	}
	if gatherer == nil {
		return fmt.Errorf("montecarlo: nil gatherer")
	}

	expiry := option.Expiry()
	variance := vol.IntegralSquare(0, expiry)
	rootVariance := math.Sqrt(variance)
	itoCorrection := -0.5 * variance
	rateIntegral := rate.Integral(0, expiry)
	movedSpot := spot * math.Exp(rateIntegral+itoCorrection)
	discounting := math.Exp(-rateIntegral)

	e.logger.Debugf("pricing %d paths: variance=%g movedSpot=%g discounting=%g",
		numberOfPaths, variance, movedSpot, discounting)

	for i := 0; i < numberOfPaths; i++ {
		z := e.normal.Rand()
		terminalSpot := movedSpot * math.Exp(rootVariance*z)
		gatherer.DumpOneResult(discounting * option.CalcPayoff(terminalSpot))
	}
	e.logger.Infof("completed %d paths for expiry %g", numberOfPaths, expiry)
	return nil
}
