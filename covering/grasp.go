package covering

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/rng"
	"github.com/katalvlaran/coverpack/solve"
)

// GRASP runs a greedy randomized adaptive search procedure: every
// restart builds a cover by drawing a random column from the
// restricted candidate list (RCL) of near-best unit costs, then prunes
// redundant columns in a reverse elimination pass. The cheapest
// construction over all restarts wins; cost ties keep the earliest
// restart.
//
// Reproducibility: all randomness flows from Options.Seed through
// independent per-restart streams (rng.Derive), so equal seeds yield
// identical Solutions.
//
// Errors: ErrBadRestarts, ErrBadGreediness — raised before any
// computation. Infeasibility is reported via Solution.Status.
//
// Complexity: O(Restarts·rows·n²) time worst case.
func GRASP(m *model.Covering, opts Options) (solve.Solution, error) {
	opts, err := opts.normalized()
	if err != nil {
		return solve.Solution{}, err
	}

	n := m.VariableCount()
	costs := m.Costs()

	parent := opts.Seed
	if parent == 0 {
		parent = rng.DefaultSeed
	}

	var (
		bestSel  []int
		bestCost float64
		found    bool
	)
	for restart := 0; restart < opts.Restarts; restart++ {
		r := rng.FromSeed(rng.Derive(parent, uint64(restart)))

		sel, ok := construct(m, costs, opts, r)
		if !ok {
			continue
		}
		if !opts.SkipLocalSearch {
			sel = eliminate(m, sel)
		}

		cost := m.CostOf(sel)
		if !found || cost < bestCost {
			bestSel, bestCost, found = sel, cost, true
		}
	}

	if !found {
		return solve.Infeasible(n), nil
	}
	if len(bestSel) == 0 {
		return solve.Integral(nil, n, 0, solve.StatusOptimal, 1), nil
	}

	return solve.Integral(bestSel, n, bestCost, solve.StatusApproximate, 0), nil
}

// construct builds one randomized-greedy cover over a fresh residual
// workspace.
func construct(m *model.Covering, costs []float64, opts Options, r *rand.Rand) ([]int, bool) {
	n := m.VariableCount()
	w := newWorkspace(m)

	var sel []int
	for !w.satisfied() {
		type cand struct {
			index int
			unit  float64
		}
		var (
			cands []cand
			best  float64
		)
		for j := 0; j < n; j++ {
			if !w.eligible(j) {
				continue
			}
			contrib := w.contribution(j)
			if contrib <= model.FeasTol {
				continue
			}
			u := costs[j] / contrib
			if len(cands) == 0 || u < best {
				best = u
			}
			cands = append(cands, cand{index: j, unit: u})
		}
		if len(cands) == 0 {
			return nil, false
		}

		sort.Slice(cands, func(a, b int) bool {
			if cands[a].unit != cands[b].unit {
				return cands[a].unit < cands[b].unit
			}

			return cands[a].index < cands[b].index
		})
		var rcl []int
		for _, c := range cands {
			if opts.Greediness*c.unit > best {
				break
			}
			rcl = append(rcl, c.index)
		}
		if opts.MaxCandidates > 0 && len(rcl) > opts.MaxCandidates {
			rcl = rcl[:opts.MaxCandidates]
		}

		pick := rcl[r.Intn(len(rcl))]
		w.take(pick)
		sel = append(sel, pick)
	}

	return sel, true
}

// eliminate drops redundant columns in reverse purchase order: a column
// is removed when the coverage excess of every row survives without it.
// Capacity rows only relax on removal, so they need no re-check.
func eliminate(m *model.Covering, sel []int) []int {
	a := m.CoverageMatrix()
	b := m.Requirements()

	// Row coverage of the full selection.
	coverage := make([]float64, len(b))
	for _, j := range sel {
		for i := range coverage {
			coverage[i] += a[i][j]
		}
	}

	kept := make([]int, 0, len(sel))
	for k := len(sel) - 1; k >= 0; k-- {
		j := sel[k]
		redundant := true
		for i := range coverage {
			if coverage[i]-a[i][j] < b[i]-model.FeasTol {
				redundant = false

				break
			}
		}
		if redundant {
			for i := range coverage {
				coverage[i] -= a[i][j]
			}

			continue
		}
		kept = append(kept, j)
	}

	return kept
}
