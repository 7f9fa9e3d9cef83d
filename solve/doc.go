// Package solve defines the Solution result type shared by every
// algorithm in coverpack, together with its Status tag.
//
// A Solution is created once by an algorithm run and never mutated
// afterwards. Infeasibility is a first-class outcome: solvers report it
// via StatusInfeasible rather than an error, so callers branch on status
// without exception-style handling for an expected result.
//
// The Ratio field carries the proven worst-case approximation factor of
// the producing algorithm, normalized to be ≥ 1 for both minimization
// and maximization (obj ≤ Ratio·OPT, resp. OPT ≤ Ratio·obj). Ratio == 0
// means no bound is certified (e.g., randomized heuristics).
package solve
