package covering

import (
	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/solve"
)

// Greedy runs Dobson's iterative rule: while some requirement is
// uncovered, buy the eligible column minimizing cost per unit of
// residual contribution, then shrink the residuals and re-clamp. For
// integral data this is the classic O(log)-factor covering greedy; no
// numeric ratio is certified here for fractional inputs, so Ratio is 0.
//
// Determinism: unit-cost ties break by lower column index.
//
// Status: StatusInfeasible when a positive residual remains but no
// eligible column contributes (exhausted columns, all-zero rows, or
// capacity limits); StatusOptimal for instances whose requirements are
// all zero; StatusApproximate otherwise.
//
// Complexity: O(rows·n) per purchase, at most n purchases.
func Greedy(m *model.Covering) solve.Solution {
	n := m.VariableCount()
	costs := m.Costs()
	w := newWorkspace(m)

	var sel []int
	for !w.satisfied() {
		best, bestUnit := -1, 0.0
		for j := 0; j < n; j++ {
			if !w.eligible(j) {
				continue
			}
			contrib := w.contribution(j)
			if contrib <= model.FeasTol {
				continue
			}
			unit := costs[j] / contrib
			if best == -1 || unit < bestUnit {
				best, bestUnit = j, unit
			}
		}
		if best == -1 {
			return solve.Infeasible(n)
		}
		w.take(best)
		sel = append(sel, best)
	}

	if len(sel) == 0 {
		return solve.Integral(nil, n, 0, solve.StatusOptimal, 1)
	}

	return solve.Integral(sel, n, m.CostOf(sel), solve.StatusApproximate, 0)
}
