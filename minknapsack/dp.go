package minknapsack

import (
	"math"

	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/ranking"
	"github.com/katalvlaran/coverpack/solve"
)

// Exact solves the instance optimally with a bounded (cost, weight)
// pair dynamic program. The frontier of undominated pairs is pruned by
// the primal-dual 2-approximation: any partial selection whose cost
// exceeds that upper bound can never beat the optimum, which bounds the
// frontier by O(2·OPT) states for integral costs. Pair weights are
// clamped at the demand, so all sufficiently heavy states collapse.
//
// Complexity: O(n·min{2·OPT, Σw}) time for integral data.
func Exact(m *model.MinKnapsack) solve.Solution {
	n := m.VariableCount()
	if m.Infeasible() {
		return solve.Infeasible(n)
	}
	if m.Demand() <= 0 {
		return solve.Integral(nil, n, 0, solve.StatusOptimal, 1)
	}

	bound := PrimalDual(m).Objective
	best, ok := boundedPairs(m.Costs(), m.Weights(), m.Demand(), bound)
	if !ok {
		return solve.Infeasible(n)
	}

	return solve.Integral(best.Path(), n, best.Value, solve.StatusOptimal, 1)
}

// FPTAS returns a cover with cost ≤ (1+ε)·OPT via cost rounding
// (Lawler-style): scale costs down by K = ε·C₀/(2n) where C₀ is the
// primal-dual upper bound, floor to integers, auto-select items whose
// scaled cost vanishes, and run the bounded pair DP on the remainder.
// The reported objective is the true (unscaled) cost of the selection.
//
// ε must lie in (0, 1); anything else is a configuration error raised
// before any computation.
//
// Complexity: O(n²/ε) time.
func FPTAS(m *model.MinKnapsack, eps float64) (solve.Solution, error) {
	if math.IsNaN(eps) || eps <= 0 || eps >= 1 {
		return solve.Solution{}, ErrBadEpsilon
	}

	n := m.VariableCount()
	if m.Infeasible() {
		return solve.Infeasible(n), nil
	}
	if m.Demand() <= 0 {
		return solve.Integral(nil, n, 0, solve.StatusOptimal, 1), nil
	}

	costs, weights := m.Costs(), m.Weights()

	upper := PrimalDual(m).Objective
	if upper == 0 {
		// A zero-cost cover exists; the primal-dual selection is optimal.
		pd := PrimalDual(m)

		return solve.Integral(pd.Selected, n, 0, solve.StatusOptimal, 1), nil
	}

	k := upper * eps / (2 * float64(n))
	if k <= 1 {
		// Rounding would refine, not coarsen: solve exactly.
		return Exact(m), nil
	}

	scaled := make([]float64, n)
	for i, c := range costs {
		scaled[i] = math.Floor(c / k)
	}

	// Items whose scaled cost vanishes are free after rounding: take
	// them first, in index order, until the demand is met.
	var (
		sel      []int
		residual = m.Demand()
	)
	for i := 0; i < n && residual > model.FeasTol; i++ {
		if scaled[i] == 0 {
			sel = append(sel, i)
			residual -= weights[i]
		}
	}

	if residual > model.FeasTol {
		// Bounded DP over the positive-cost remainder.
		var (
			remIdx  []int
			remCost []float64
			remWt   []float64
		)
		for i := 0; i < n; i++ {
			if scaled[i] > 0 {
				remIdx = append(remIdx, i)
				remCost = append(remCost, scaled[i])
				remWt = append(remWt, weights[i])
			}
		}
		best, ok := boundedPairs(remCost, remWt, residual, upper/k)
		if !ok {
			return solve.Infeasible(n), nil
		}
		for _, local := range best.Path() {
			sel = append(sel, remIdx[local])
		}
	}

	var cost float64
	for _, i := range sel {
		cost += costs[i]
	}

	return solve.Integral(sel, n, cost, solve.StatusApproximate, 1+eps), nil
}

// boundedPairs runs the min-cost pair DP: extend the undominated
// (cost, weight) frontier item by item, discarding states whose cost
// exceeds bound, clamping weights at demand. It returns the cheapest
// feasible pair, or ok == false when no state meets the demand.
func boundedPairs(costs, weights []float64, demand, bound float64) (ranking.Pair, bool) {
	pairs := []ranking.Pair{{}}

	for i := range costs {
		var add []ranking.Pair
		for _, p := range pairs {
			if p.Value+costs[i] > bound+model.FeasTol {
				// Frontier costs ascend: every later pair busts too.
				break
			}
			if p.Weight >= demand {
				// Already feasible; adding items only raises cost.
				continue
			}
			np := p.Extend(i, costs[i], weights[i])
			if np.Weight > demand {
				np.Weight = demand
			}
			add = append(add, np)
		}
		pairs = ranking.MergeMinPairs(pairs, add)
	}

	// Frontier costs ascend, so the first feasible pair is cheapest.
	for _, p := range pairs {
		if p.Weight >= demand-model.FeasTol {
			return p, true
		}
	}

	return ranking.Pair{}, false
}
