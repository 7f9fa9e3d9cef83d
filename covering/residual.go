package covering

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/ranking"
)

// workspace is the residual instance one algorithm run mutates. It is
// built from copies, so the model stays untouched and concurrent runs
// never share state.
//
// The coverage block is standardized on construction: contributions are
// clamped to the requirements (a_ij ← min(a_ij, b_i)) and rows with a
// positive requirement are scaled so b_i = 1, which makes unit costs
// comparable across rows of different magnitude.
type workspace struct {
	n      int
	a      [][]float64 // residual contributions, clamped to b
	b      []float64   // residual requirements (1 per live row at start)
	unbilt mapset.Set[int]
	caps   []ranking.Accumulator // capacity usage per capacity row
	capMat [][]float64
	ub     []float64 // per-variable upper bounds; nil ⇒ unbounded
}

func newWorkspace(m *model.Covering) *workspace {
	w := &workspace{
		n:      m.VariableCount(),
		a:      m.CoverageMatrix(),
		b:      m.Requirements(),
		unbilt: mapset.NewThreadUnsafeSet[int](),
		capMat: m.CapacityMatrix(),
		ub:     m.UpperBounds(),
	}
	for j := 0; j < w.n; j++ {
		w.unbilt.Add(j)
	}
	for _, limit := range m.CapacityLimits() {
		w.caps = append(w.caps, ranking.NewAccumulator(limit))
	}

	// Standardize: clamp then scale each live row to requirement 1.
	for i, row := range w.a {
		req := w.b[i]
		if req <= 0 {
			w.b[i] = 0
			for j := range row {
				row[j] = 0
			}

			continue
		}
		for j, v := range row {
			if v > req {
				v = req
			}
			row[j] = v / req
		}
		w.b[i] = 1
	}

	return w
}

// satisfied reports whether every residual requirement is met.
func (w *workspace) satisfied() bool {
	for _, r := range w.b {
		if r > model.FeasTol {
			return false
		}
	}

	return true
}

// contribution sums column j's residual coverage over live rows.
func (w *workspace) contribution(j int) float64 {
	var total float64
	for i, row := range w.a {
		if w.b[i] > model.FeasTol {
			total += row[j]
		}
	}

	return total
}

// eligible reports whether column j is still purchasable: unbuilt,
// allowed at least one unit by its upper bound, and within every
// capacity row. A purchase sets x_j = 1, so d_j < 1 excludes the
// column outright.
func (w *workspace) eligible(j int) bool {
	if !w.unbilt.Contains(j) {
		return false
	}
	if w.ub != nil && w.ub[j] < 1-model.FeasTol {
		return false
	}
	for r := range w.caps {
		if !w.caps[r].Fits(w.capMat[r][j]) {
			return false
		}
	}

	return true
}

// take purchases column j: shrink residual requirements, re-clamp the
// matrix, consume capacities, and retire the column.
func (w *workspace) take(j int) {
	for i, row := range w.a {
		w.b[i] -= row[j]
		if w.b[i] < 0 {
			w.b[i] = 0
		}
		for k, v := range row {
			if v > w.b[i] {
				row[k] = w.b[i]
			}
		}
	}
	for r := range w.caps {
		w.caps[r].Add(w.capMat[r][j])
	}
	w.unbilt.Remove(j)
}
