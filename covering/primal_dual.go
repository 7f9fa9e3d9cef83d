package covering

import (
	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/solve"
)

// PrimalDual approximately solves the covering program by the
// dual-raising schema: raise the duals of all unsatisfied rows
// uniformly until some eligible column's amortized (reduced) cost goes
// tight, fix that column into the solution, shrink the residual
// requirements, and repeat until every row is covered.
//
// The certified approximation factor is the column sparsity bound: the
// maximum number of strictly positive entries in any coverage row,
// reported as Solution.Ratio.
//
// Status: StatusInfeasible when a positive residual remains but every
// eligible column's contribution is zero; StatusOptimal for all-zero
// requirements; StatusApproximate otherwise.
//
// Complexity: O(rows·n) per purchase, at most n purchases.
func PrimalDual(m *model.Covering) solve.Solution {
	n := m.VariableCount()
	w := newWorkspace(m)

	// amortized[j] is c_j minus the dual already charged against the
	// column; a purchase happens when it goes tight per unit of
	// residual contribution.
	amortized := m.Costs()

	var sel []int
	for !w.satisfied() {
		// Find the column whose amortized unit cost is lowest.
		best, bestUnit := -1, 0.0
		for j := 0; j < n; j++ {
			if !w.eligible(j) {
				continue
			}
			contrib := w.contribution(j)
			if contrib <= model.FeasTol {
				continue
			}
			unit := amortized[j] / contrib
			if best == -1 || unit < bestUnit {
				best, bestUnit = j, unit
			}
		}
		if best == -1 {
			return solve.Infeasible(n)
		}

		// Uniform dual raise: charge every other unbuilt column for its
		// residual contribution at the tight rate.
		for j := 0; j < n; j++ {
			if j == best || !w.unbilt.Contains(j) {
				continue
			}
			if contrib := w.contribution(j); contrib > 0 {
				amortized[j] -= contrib * bestUnit
			}
		}

		w.take(best)
		sel = append(sel, best)
	}

	if len(sel) == 0 {
		return solve.Integral(nil, n, 0, solve.StatusOptimal, 1)
	}

	return solve.Integral(sel, n, m.CostOf(sel), solve.StatusApproximate, rowSupportBound(m))
}

// rowSupportBound reports the maximum number of strictly positive
// entries over all coverage rows — the classic primal-dual covering
// ratio.
func rowSupportBound(m *model.Covering) float64 {
	var maxSupport int
	for _, row := range m.CoverageMatrix() {
		support := 0
		for _, v := range row {
			if v > 0 {
				support++
			}
		}
		if support > maxSupport {
			maxSupport = support
		}
	}

	return float64(maxSupport)
}
