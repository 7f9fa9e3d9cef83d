// Package knapsack solves the 0-1 maximum knapsack problem
//
//	max pᵀx   s.t.  wᵀx ≤ capacity,  x ∈ {0, 1}ⁿ
//
// on model.Knapsack instances. Four solvers are provided:
//
//   - Greedy     — ratio-descending fill plus a best-single-item
//     comparison (Dantzig bound); certified ½-approximation, O(n log n).
//   - Exact      — Lawler's (profit, weight) pair dynamic program with
//     dominance pruning and back-pointer reconstruction;
//     pseudo-polynomial O(n·min{P*, capacity}) for integral data.
//   - FPTAS      — input rounding scaled by the greedy lower bound; returns
//     objective ≥ (1−ε)·OPT in O(n²/ε).
//   - Fractional — the LP relaxation solved by sorting; at most one
//     fractional item in the optimum.
//
// All solvers are deterministic, read the model without mutating it,
// and report results as solve.Solution values.
package knapsack
