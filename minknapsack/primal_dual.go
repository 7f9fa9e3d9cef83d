package minknapsack

import (
	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/solve"
)

// PrimalDual runs the Carnes–Shmoys primal-dual schema: starting from
// the all-zero primal and dual, raise the dual variable of the covering
// constraint uniformly until some item's amortized cost becomes tight,
// buy that item, shrink the residual demand, and repeat. Weights are
// clamped to the residual demand first, which is exactly the
// knapsack-cover inequality strengthening that certifies cost ≤ 2·OPT.
//
// Complexity: O(n²) time, O(n) space.
func PrimalDual(m *model.MinKnapsack) solve.Solution {
	sol, _ := PrimalDualWithDuals(m)

	return sol
}

// PrimalDualWithDuals additionally returns the sequence of dual
// increments raised during the run, one per purchased item, in
// purchase order. The increments assemble the feasible dual solution
// certifying the factor-2 bound; the slice is nil for infeasible or
// zero-demand instances.
func PrimalDualWithDuals(m *model.MinKnapsack) (solve.Solution, []float64) {
	n := m.VariableCount()
	if m.Infeasible() {
		return solve.Infeasible(n), nil
	}
	if m.Demand() <= 0 {
		return solve.Integral(nil, n, 0, solve.StatusOptimal, 1), nil
	}

	costs, weights := m.Costs(), m.Weights()

	// amortized[i] is c_i minus everything already paid for by raised
	// duals; a tight (zero) amortized cost is what triggers a purchase.
	amortized := make([]float64, n)
	copy(amortized, costs)

	selected := make([]bool, n)
	residual := m.Demand()

	var (
		sel   []int
		duals []float64
	)
	for round := 0; round < n && residual > model.FeasTol; round++ {
		// Clamp weights to the residual demand (knapsack-cover form),
		// then find the item whose amortized unit cost is lowest.
		item, unit := -1, 0.0
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
			u := amortized[i] / w
			if item == -1 || u < unit {
				item, unit = i, u
			}
		}
		if item == -1 {
			// Residual demand positive but no column can contribute.
			return solve.Infeasible(n), nil
		}

		// Raise the dual by the tight unit cost and charge every
		// still-unselected item for its clamped contribution.
		oldResidual := residual
		for i := 0; i < n; i++ {
			if selected[i] || i == item {
				continue
			}
			w := weights[i]
			if w > oldResidual {
				w = oldResidual
			}
			if w > 0 {
				amortized[i] -= w * unit
			}
		}

		selected[item] = true
		sel = append(sel, item)
		duals = append(duals, unit)
		w := weights[item]
		if w > residual {
			w = residual
		}
		residual -= w
	}

	if residual > model.FeasTol {
		return solve.Infeasible(n), nil
	}

	var cost float64
	for _, i := range sel {
		cost += costs[i]
	}

	return solve.Integral(sel, n, cost, solve.StatusApproximate, 2), duals
}
