package knapsack

import (
	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/ranking"
	"github.com/katalvlaran/coverpack/solve"
)

// Fractional solves the LP relaxation of the instance by the classic
// sorting argument: take items whole in descending value/weight order
// and fill the residual capacity with a fraction of the first item that
// no longer fits. The optimum has at most one fractional entry.
//
// The result is the true LP optimum, so Status is StatusOptimal (for
// the relaxation, not the integer program).
//
// Complexity: O(n log n) time, O(n) space.
func Fractional(m *model.Knapsack) solve.Solution {
	n := m.VariableCount()
	values, weights := m.Values(), m.Weights()

	items := make([]ranking.Item, n)
	for i := 0; i < n; i++ {
		items[i] = ranking.Item{Index: i, Num: values[i], Den: weights[i]}
	}
	ranking.ByRatioDesc(items)

	x := make([]float64, n)
	remaining := m.Capacity()
	var value float64
	for _, it := range items {
		w := weights[it.Index]
		if w <= remaining {
			x[it.Index] = 1
			value += values[it.Index]
			remaining -= w

			continue
		}
		if w > 0 && remaining > 0 {
			frac := remaining / w
			x[it.Index] = frac
			value += frac * values[it.Index]
		}

		break
	}

	return solve.Fractional(x, value, solve.StatusOptimal)
}
