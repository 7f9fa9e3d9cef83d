package knapsack

import (
	"math"

	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/solve"
)

// FPTAS returns a selection with value ≥ (1−ε)·OPT via input rounding
// (Lawler 1977): take the greedy value P₀ as a lower bound on OPT,
// scale values down by K = ε·P₀/n, floor to integers, and run the
// exact pair DP on the scaled instance. The true (unscaled) value of
// the recovered selection is reported.
//
// ε must lie in (0, 1); anything else is a configuration error raised
// before any computation. Scaling factors K ≤ 1 would refine rather
// than coarsen the instance, so the exact DP is run directly in that
// case and the result is optimal.
//
// Complexity: O(n²/ε) time for the scaled DP.
func FPTAS(m *model.Knapsack, eps float64) (solve.Solution, error) {
	if math.IsNaN(eps) || eps <= 0 || eps >= 1 {
		return solve.Solution{}, ErrBadEpsilon
	}

	n := m.VariableCount()
	greedy := Greedy(m)
	if greedy.Status == solve.StatusOptimal {
		// Greedy already certified optimality (everything fits, or
		// nothing of positive value fits).
		return greedy, nil
	}

	// Greedy value ≤ OPT, so the total rounding loss n·K stays ≤ ε·OPT.
	k := greedy.Objective * eps / float64(n)
	if k <= 1 {
		return Exact(m), nil
	}

	values, weights := m.Values(), m.Weights()
	scaled := make([]float64, n)
	for i, v := range values {
		scaled[i] = math.Floor(v / k)
	}

	best := dpPairs(scaled, weights, m.Capacity())
	sel := best.Path()

	var value float64
	for _, i := range sel {
		value += values[i]
	}

	sol := solve.Integral(sel, n, value, solve.StatusApproximate, 1/(1-eps))

	return sol, nil
}
