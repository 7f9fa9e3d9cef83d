// Package minknapsack solves the 0-1 minimization knapsack problem
//
//	min cᵀx   s.t.  wᵀx ≥ demand,  x ∈ {0, 1}ⁿ
//
// on model.MinKnapsack instances:
//
//   - Greedy     — cost/weight-ascending fill with a penultimate-drop
//     trim (Csirik–Frenk); certified 2-approximation, O(n log n).
//   - PrimalDual — the Carnes–Shmoys schema: raise the dual uniformly
//     until some item's amortized cost goes tight, buy it, repeat;
//     certified 2-approximation, optionally exposing the dual values.
//   - GRASP      — randomized-greedy restarts over a restricted
//     candidate list with swap local search; explicit seed, stable
//     documented defaults.
//   - Exact      — bounded (cost, weight) pair dynamic program pruned by
//     a constant-factor upper bound.
//   - FPTAS      — cost rounding around the 2-approximation; returns
//     cost ≤ (1+ε)·OPT.
//
// Infeasible instances (total weight below demand) are reported through
// Solution.Status, never as errors.
package minknapsack
