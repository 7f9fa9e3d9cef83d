package minknapsack

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/rng"
	"github.com/katalvlaran/coverpack/solve"
)

// GRASP runs a greedy randomized adaptive search procedure: every
// restart builds a cover by repeatedly drawing a random item from the
// restricted candidate list (RCL) of near-best amortized unit costs,
// then improves it by redundancy elimination and single-item swaps.
// The cheapest construction over all restarts wins; cost ties keep the
// earliest restart.
//
// Reproducibility: all randomness flows from Options.Seed through
// independent per-restart streams (rng.Derive), so equal seeds yield
// identical Solutions and restarts may be evaluated in any order.
//
// Errors: ErrBadRestarts, ErrBadGreediness — raised before any
// computation. Infeasibility is reported via Solution.Status.
//
// Complexity: O(Restarts·n²) time, O(n) space per restart.
func GRASP(m *model.MinKnapsack, opts Options) (solve.Solution, error) {
	opts, err := opts.normalized()
	if err != nil {
		return solve.Solution{}, err
	}

	n := m.VariableCount()
	if m.Infeasible() {
		return solve.Infeasible(n), nil
	}
	if m.Demand() <= 0 {
		return solve.Integral(nil, n, 0, solve.StatusOptimal, 1), nil
	}

	costs, weights := m.Costs(), m.Weights()

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

		sel, ok := construct(costs, weights, m.Demand(), opts, r)
		if !ok {
			continue
		}
		if !opts.SkipLocalSearch {
			sel = improve(costs, weights, m.Demand(), sel)
		}

		var cost float64
		for _, i := range sel {
			cost += costs[i]
		}
		if !found || cost < bestCost {
			bestSel, bestCost, found = sel, cost, true
		}
	}

	if !found {
		return solve.Infeasible(n), nil
	}

	return solve.Integral(bestSel, n, bestCost, solve.StatusApproximate, 0), nil
}

// construct builds one randomized-greedy cover. Candidates are ranked
// by amortized unit cost c_i / min(w_i, residual); the RCL admits every
// candidate u with α·u ≤ best, capped at MaxCandidates.
func construct(costs, weights []float64, demand float64, opts Options, r *rand.Rand) ([]int, bool) {
	n := len(costs)
	selected := make([]bool, n)
	residual := demand

	var sel []int
	for len(sel) < n && residual > model.FeasTol {
		// Rank the unselected, contributing candidates.
		type cand struct {
			index int
			unit  float64
		}
		var (
			cands []cand
			best  float64
		)
		for i := 0; i < n; i++ {
			if selected[i] {
				continue
			}
			w := weights[i]
			if w > residual {
				w = residual
			}
			if w <= 0 {
				continue
			}
			u := costs[i] / w
			if len(cands) == 0 || u < best {
				best = u
			}
			cands = append(cands, cand{index: i, unit: u})
		}
		if len(cands) == 0 {
			return nil, false
		}

		// Restricted candidate list: near-best unit costs only, best
		// first so a MaxCandidates cap keeps the cheapest entries.
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
		selected[pick] = true
		sel = append(sel, pick)
		w := weights[pick]
		if w > residual {
			w = residual
		}
		residual -= w
	}

	if residual > model.FeasTol {
		return nil, false
	}

	return sel, true
}

// improve applies two local-search passes: drop redundant items newest
// first, then first-improvement swaps of one selected item for one
// cheaper unselected item while feasibility holds.
func improve(costs, weights []float64, demand float64, sel []int) []int {
	n := len(costs)

	inSel := make([]bool, n)
	var total float64
	for _, i := range sel {
		inSel[i] = true
		total += weights[i]
	}

	// Pass 1: redundancy elimination, newest first.
	kept := make([]int, 0, len(sel))
	for k := len(sel) - 1; k >= 0; k-- {
		i := sel[k]
		if total-weights[i] >= demand {
			total -= weights[i]
			inSel[i] = false

			continue
		}
		kept = append(kept, i)
	}
	sel = kept

	// Pass 2: swap a selected item for a strictly cheaper unselected
	// one when the cover survives. Repeat until a full sweep makes no
	// change; sweeps scan in index order, keeping runs deterministic.
	for changed := true; changed; {
		changed = false
		for k, i := range sel {
			for j := 0; j < n; j++ {
				if inSel[j] || costs[j] >= costs[i] {
					continue
				}
				if total-weights[i]+weights[j] < demand {
					continue
				}
				total += weights[j] - weights[i]
				inSel[i], inSel[j] = false, true
				sel[k] = j
				i = j
				changed = true
			}
		}
	}

	return sel
}
