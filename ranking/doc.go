// Package ranking provides the small numeric structures shared by the
// coverpack solvers:
//
//   - ratio orderings — deterministic sorts of items by numerator /
//     denominator ratios with stable tie-breaks, the selection machinery
//     of every greedy heuristic;
//   - Accumulator — a capacity-tracking counter for fill loops;
//   - pair frontiers — dominance-pruned (value, weight) lists with
//     back-pointer reconstruction, the core of the knapsack and
//     min-knapsack dynamic programs.
//
// The package depends on nothing else in the module and holds no state
// beyond the values handed to it.
package ranking
