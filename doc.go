// Package coverpack is a library of models and algorithms for covering
// and packing integer programs — problems of the form
//
//	min cᵀx   s.t.  Ax ≥ b,  Bx ≤ f,  x ≤ d,  x ≥ 0
//
// with non-negative data, and their maximization (packing) counterparts.
//
// 🚀 What is coverpack?
//
//	A structure-exploiting toolkit for covering/packing subclasses:
//		• Models: validated, immutable instances — Covering, Packing,
//		  Knapsack, MinKnapsack
//		• Knapsack: greedy ½-approximation, exact pair DP, FPTAS,
//		  fractional (LP) relaxation by sorting
//		• MinKnapsack: greedy 2-approximation, primal-dual schema with
//		  dual certificates, GRASP, exact bounded DP, FPTAS
//		• Covering: greedy, primal-dual with sparsity-bounded ratio, GRASP
//		• LP relaxation: pluggable backends (gonum simplex, lp_solve)
//
// ✨ Design guarantees
//
//   - Immutable models – construct once, share across concurrent runs
//   - Fail fast – malformed data rejected at construction, bad options
//     rejected before any computation
//   - Infeasibility is a result, not a panic – solvers report it via
//     Solution.Status
//   - Deterministic – explicit seeds, per-run generators, stable tie-breaks
//
// Package map:
//
//	model/       — instance types, validation, feasibility checks
//	solve/       — the Solution result type and status tags
//	ranking/     — ratio orderings, capacity accumulators, pair frontiers
//	rng/         — deterministic seeded RNG streams for heuristics
//	knapsack/    — 0-1 max-knapsack solvers
//	minknapsack/ — min-cost knapsack solvers
//	covering/    — capacitated covering solvers
//	lprelax/     — LP relaxation helper with pluggable backends
//
// Quick start:
//
//	m, err := model.NewKnapsack([]float64{3, 4, 5}, []float64{2, 3, 4}, 5)
//	if err != nil { ... }
//	sol := knapsack.Greedy(m) // sol.Objective == 7
package coverpack
