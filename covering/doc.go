// Package covering solves covering integer programs
//
//	min cᵀx   s.t.  Ax ≥ b,  Bx ≤ f,  x ∈ {0, 1}ⁿ
//
// on model.Covering instances, optionally capacitated:
//
//   - Greedy     — Dobson's iterative rule: repeatedly buy the column
//     with the lowest cost per residual contribution, clamping the
//     matrix to the residual requirements after every purchase.
//   - PrimalDual — the dual-raising schema: grow duals uniformly until
//     a column's amortized cost goes tight, buy it, repeat; the
//     certified ratio is the maximum row support of A (column
//     sparsity bound).
//   - GRASP      — randomized-greedy restarts over a restricted
//     candidate list with reverse-pass redundancy elimination.
//
// All three respect the capacity block and the per-variable upper
// bounds when present: a column whose purchase would violate some
// capacity row, or whose bound d_j forbids a full unit, is ineligible.
// A residual requirement no eligible column can serve is reported as
// StatusInfeasible — a first-class outcome, not an error.
package covering
