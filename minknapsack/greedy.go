package minknapsack

import (
	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/ranking"
	"github.com/katalvlaran/coverpack/solve"
)

// Greedy builds a feasible cover by taking items in ascending
// cost/weight order until the demand is met, then trims: earlier picks
// that the final item makes redundant are dropped, newest first
// (Csirik–Frenk). The result costs at most twice the optimum.
//
// Determinism: ratio ties break by larger weight, then lower index.
//
// Status: StatusInfeasible when total weight cannot meet the demand;
// StatusOptimal for a zero demand (empty selection); StatusApproximate
// with Ratio 2 otherwise.
//
// Complexity: O(n log n) time, O(n) space.
func Greedy(m *model.MinKnapsack) solve.Solution {
	n := m.VariableCount()
	if m.Infeasible() {
		return solve.Infeasible(n)
	}
	if m.Demand() <= 0 {
		return solve.Integral(nil, n, 0, solve.StatusOptimal, 1)
	}

	costs, weights := m.Costs(), m.Weights()

	items := make([]ranking.Item, n)
	for i := 0; i < n; i++ {
		items[i] = ranking.Item{Index: i, Num: costs[i], Den: weights[i]}
	}
	ranking.ByRatioAsc(items)

	// Stage 1: fill until the demand is met.
	var (
		sel    []int
		weight float64
	)
	for _, it := range items {
		sel = append(sel, it.Index)
		weight += weights[it.Index]
		if weight >= m.Demand() {
			break
		}
	}

	// Stage 2: drop earlier picks the last item covers for, newest
	// first. The last pick itself is what closed the demand and stays.
	last := len(sel) - 1
	for last > 0 {
		j := sel[last-1]
		if weight-weights[j] < m.Demand() {
			break
		}
		weight -= weights[j]
		sel = append(sel[:last-1], sel[last])
		last--
	}

	var cost float64
	for _, i := range sel {
		cost += costs[i]
	}

	return solve.Integral(sel, n, cost, solve.StatusApproximate, 2)
}
