package knapsack

import (
	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/ranking"
	"github.com/katalvlaran/coverpack/solve"
)

// Greedy packs items in descending value/weight order, skipping items
// that no longer fit, then compares the fill against the best single
// item that fits alone and keeps the better of the two (Dantzig bound).
// The combination certifies value ≥ OPT/2.
//
// Determinism: ratio ties break by smaller weight, then lower index.
//
// Status: StatusOptimal when every item was packed (the selection is
// the whole ground set) or when nothing of positive value fits at all
// (the empty selection is optimal, e.g. capacity 0); StatusApproximate
// with Ratio 2 otherwise.
//
// Complexity: O(n log n) time, O(n) space.
func Greedy(m *model.Knapsack) solve.Solution {
	n := m.VariableCount()
	values, weights := m.Values(), m.Weights()

	items := make([]ranking.Item, n)
	for i := 0; i < n; i++ {
		items[i] = ranking.Item{Index: i, Num: values[i], Den: weights[i]}
	}
	ranking.ByRatioDesc(items)

	// Stage 1: greedy fill.
	acc := ranking.NewAccumulator(m.Capacity())
	var (
		sel     []int
		value   float64
		skipped bool
	)
	for _, it := range items {
		w := weights[it.Index]
		if !acc.Fits(w) {
			skipped = true

			continue
		}
		acc.Add(w)
		sel = append(sel, it.Index)
		value += values[it.Index]
	}

	// Stage 2: Dantzig comparison against the best single item.
	bestIdx, bestVal := -1, 0.0
	for i := 0; i < n; i++ {
		if weights[i] <= m.Capacity() && values[i] > bestVal {
			bestIdx, bestVal = i, values[i]
		}
	}
	if bestVal > value {
		sel, value = []int{bestIdx}, bestVal
	}

	if !skipped {
		// Every item fits: the full selection is trivially optimal.
		return solve.Integral(sel, n, value, solve.StatusOptimal, 1)
	}
	if value == 0 {
		// No positive-value item fits; the (possibly empty) zero-value
		// selection is optimal.
		return solve.Integral(sel, n, 0, solve.StatusOptimal, 1)
	}

	return solve.Integral(sel, n, value, solve.StatusApproximate, 2)
}
