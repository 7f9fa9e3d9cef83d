package knapsack

import "errors"

// ErrBadEpsilon is returned by FPTAS when ε lies outside (0, 1).
// ε ≥ 1 permits arbitrarily bad solutions; ε ≤ 0 asks for exactness —
// use Exact for that.
var ErrBadEpsilon = errors.New("knapsack: epsilon must lie in (0,1)")
