package knapsack

import (
	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/ranking"
	"github.com/katalvlaran/coverpack/solve"
)

// Exact solves the instance optimally with Lawler's pair dynamic
// program: maintain the frontier of undominated (value, weight) pairs,
// extend it by each item in turn, and read the answer off the highest-
// value survivor. Back-pointers on each pair recover the selection.
//
// The frontier size is bounded by min{P*, capacity}+1 for integral
// data, giving the classic pseudo-polynomial O(n·min{P*, capacity})
// bound; fractional data stays correct with a worst case of O(2ⁿ)
// pairs, so keep Exact for small or integral instances and use FPTAS
// otherwise.
func Exact(m *model.Knapsack) solve.Solution {
	values, weights := m.Values(), m.Weights()
	best := dpPairs(values, weights, m.Capacity())
	sel := best.Path()

	return solve.Integral(sel, m.VariableCount(), best.Value, solve.StatusOptimal, 1)
}

// dpPairs runs the pair DP and returns the undominated pair of maximum
// value. The frontier is kept sorted ascending in both value and
// weight, so extension loops can stop at the first overweight pair and
// the final answer is the last frontier element.
func dpPairs(values, weights []float64, capacity float64) ranking.Pair {
	pairs := []ranking.Pair{{}}

	for i := range values {
		var add []ranking.Pair
		for _, p := range pairs {
			if p.Weight+weights[i] > capacity {
				// Frontier weights ascend: nothing further fits either.
				break
			}
			add = append(add, p.Extend(i, values[i], weights[i]))
		}
		pairs = ranking.MergeMaxPairs(pairs, add)
	}

	return pairs[len(pairs)-1]
}
