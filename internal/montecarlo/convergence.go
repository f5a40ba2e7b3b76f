package montecarlo

import (
	"fmt"
	"math"
)

// ConvergenceTable decorates another Gatherer, sampling its state on an
// exponentially growing schedule of path counts so callers can watch the
// Monte Carlo estimate settle. Snapshots are taken at 2, 4, 8, ... paths and
// each recorded row carries the path count it was taken at as its trailing
// element.
type ConvergenceTable struct {
	inner        Gatherer
	recorded     [][]float64
	snapshotAt   int
	lastSnapshot int
	pathsDone    int
	snapshotErr  error
}

// NewConvergenceTable wraps inner, which keeps ownership of the underlying
// statistic; the table only schedules when its rows get persisted.
func NewConvergenceTable(inner Gatherer) *ConvergenceTable {
	return &ConvergenceTable{inner: inner, snapshotAt: 2}
}

// DumpOneResult forwards to the inner gatherer and persists its current rows
// whenever the doubling schedule is hit.
func (t *ConvergenceTable) DumpOneResult(result float64) {
	t.inner.DumpOneResult(result)
	t.pathsDone++

	if t.pathsDone != t.snapshotAt {
		return
	}
	t.lastSnapshot = t.pathsDone
	t.snapshotAt = int(math.Ceil(float64(t.snapshotAt) * 2))

	rows, err := t.inner.ResultsSoFar()
	if err != nil {
		// The shipped gatherers cannot err here since they just received a
		// result, but the table is polymorphic over any Gatherer; keep the
		// failure and surface it on the next query instead of dropping the
		// scheduled snapshot silently.
		if t.snapshotErr == nil {
			t.snapshotErr = fmt.Errorf("montecarlo: snapshot at %d paths failed: %w", t.pathsDone, err)
		}
		return
	}
	for _, row := range rows {
		t.recorded = append(t.recorded, appendPathCount(row, t.pathsDone))
	}
}

// ResultsSoFar returns a copy of every recorded row. When the path count has
// moved past the last snapshot, a live row built from the inner gatherer's
// current state is appended; that row is not persisted, so repeated calls
// without new results are idempotent.
func (t *ConvergenceTable) ResultsSoFar() ([][]float64, error) {
	if t.snapshotErr != nil {
		return nil, t.snapshotErr
	}
	if t.pathsDone == 0 {
		return nil, ErrNoResults
	}
	out := make([][]float64, 0, len(t.recorded)+1)
	for _, row := range t.recorded {
		out = append(out, append([]float64(nil), row...))
	}
	if t.pathsDone != t.lastSnapshot {
		rows, err := t.inner.ResultsSoFar()
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			out = append(out, appendPathCount(row, t.pathsDone))
		}
	}
	return out, nil
}

// PathsDone reports how many results have been fed in.
func (t *ConvergenceTable) PathsDone() int {
	return t.pathsDone
}

func appendPathCount(row []float64, paths int) []float64 {
	snap := make([]float64, 0, len(row)+1)
	snap = append(snap, row...)
	return append(snap, float64(paths))
}
