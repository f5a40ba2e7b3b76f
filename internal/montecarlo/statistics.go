package montecarlo

import (
	"errors"
	"math"
)

// ErrNoResults is returned when statistics are requested before any path
// result has been recorded.
var ErrNoResults = errors.New("montecarlo: no results recorded yet")

// Gatherer accumulates per-path results during a simulation run. Each call
// to ResultsSoFar reports the statistics of the stream seen so far as one or
// more rows of values; the row layout is defined by the implementation.
type Gatherer interface {
	DumpOneResult(result float64)
	ResultsSoFar() ([][]float64, error)
}

// MeanGatherer keeps a running arithmetic mean of the results fed to it.
type MeanGatherer struct {
	runningSum float64
	pathsDone  int
}

// NewMeanGatherer returns an empty mean accumulator.
func NewMeanGatherer() *MeanGatherer {
	return &MeanGatherer{}
}

func (g *MeanGatherer) DumpOneResult(result float64) {
	g.runningSum += result
	g.pathsDone++
}

// ResultsSoFar returns a single row holding the current mean. It fails with
// ErrNoResults before the first result rather than dividing by zero.
func (g *MeanGatherer) ResultsSoFar() ([][]float64, error) {
	if g.pathsDone == 0 {
		return nil, ErrNoResults
	}
	return [][]float64{{g.runningSum / float64(g.pathsDone)}}, nil
}

// PathsDone reports how many results have been fed in.
func (g *MeanGatherer) PathsDone() int {
	return g.pathsDone
}

// MomentsGatherer tracks the first two moments of the result stream and
// reports a single row of [mean, standard error]. With one observation the
// standard error is reported as zero.
type MomentsGatherer struct {
	runningSum        float64
	runningSumSquares float64
	pathsDone         int
}

// NewMomentsGatherer returns an empty two-moment accumulator.
func NewMomentsGatherer() *MomentsGatherer {
	return &MomentsGatherer{}
}

func (g *MomentsGatherer) DumpOneResult(result float64) {
	g.runningSum += result
	g.runningSumSquares += result * result
	g.pathsDone++
}

func (g *MomentsGatherer) ResultsSoFar() ([][]float64, error) {
	if g.pathsDone == 0 {
		return nil, ErrNoResults
	}
	n := float64(g.pathsDone)
	mean := g.runningSum / n
	// Floating-point cancellation can push the variance a hair below zero
	// when every result is identical; clamp before the square root.
	variance := g.runningSumSquares/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return [][]float64{{mean, math.Sqrt(variance / n)}}, nil
}

// PathsDone reports how many results have been fed in.
func (g *MomentsGatherer) PathsDone() int {
	return g.pathsDone
}
