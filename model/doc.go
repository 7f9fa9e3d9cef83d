// Package model defines the problem-instance types consumed by the
// coverpack solvers: Covering, Packing, Knapsack, and MinKnapsack.
//
// Model contract:
//   - Construction is the only mutation point. Constructors validate
//     shapes, signs, and finiteness, and fail fast with sentinel errors;
//     a successfully constructed instance is immutable and safe to share
//     across concurrently running algorithms.
//   - Accessors returning slices always return fresh copies; algorithms
//     are free to turn them into residual working state.
//   - Feasibility checks use the explicit tolerance FeasTol; nothing is
//     silently corrected — negative coefficients are rejected, never
//     clamped.
//
// The shared capability surface (Validate, VariableCount, Costs, CostOf,
// IsFeasible) is captured by the Model interface, so algorithms can be
// written against capabilities rather than concrete types.
package model
