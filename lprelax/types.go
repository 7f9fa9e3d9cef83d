package lprelax

import "errors"

var (
	// ErrDelegation wraps any backend failure that is neither
	// infeasibility nor unboundedness: numeric breakdown, unexpected
	// status, binding errors. Callers match it with errors.Is.
	ErrDelegation = errors.New("lprelax: LP backend failure")

	// ErrBadProblem is returned for a structurally inconsistent
	// Problem (mismatched dimensions) before any backend is invoked.
	ErrBadProblem = errors.New("lprelax: inconsistent problem dimensions")

	// ErrUnbounded is returned by the model drivers when the
	// relaxation has no finite optimum.
	ErrUnbounded = errors.New("lprelax: relaxation is unbounded")
)

// Status classifies a backend outcome.
type Status uint8

const (
	// StatusOptimal: an optimal fractional assignment was found.
	StatusOptimal Status = iota

	// StatusInfeasible: the relaxation has no feasible point.
	StatusInfeasible

	// StatusUnbounded: the objective is unbounded over the feasible
	// region (possible for degenerate packing inputs with zero-weight,
	// unbounded variables).
	StatusUnbounded
)

// Problem is the backend-neutral LP form used by this package:
//
//	optimize cᵀx  s.t.  CovA·x ≥ CovB,  PackA·x ≤ PackB,
//	                    0 ≤ x ≤ Upper (componentwise; nil ⇒ no cap)
//
// with Minimize selecting the objective sense.
type Problem struct {
	Minimize bool
	Costs    []float64

	CovA [][]float64
	CovB []float64

	PackA [][]float64
	PackB []float64

	Upper []float64
}

// validate checks dimensional consistency.
func (p Problem) validate() error {
	n := len(p.Costs)
	if n == 0 {
		return ErrBadProblem
	}
	if len(p.CovA) != len(p.CovB) || len(p.PackA) != len(p.PackB) {
		return ErrBadProblem
	}
	for _, row := range p.CovA {
		if len(row) != n {
			return ErrBadProblem
		}
	}
	for _, row := range p.PackA {
		if len(row) != n {
			return ErrBadProblem
		}
	}
	if p.Upper != nil && len(p.Upper) != n {
		return ErrBadProblem
	}

	return nil
}

// Result is a backend outcome: the fractional assignment, its
// objective value, and — when the backend can produce them — the dual
// values of the coverage rows followed by the packing rows.
type Result struct {
	Status    Status
	X         []float64
	Objective float64
	Duals     []float64
}

// Backend is the LP solving collaborator contract. Implementations
// must be safe for concurrent use by independent calls and must return
// errors wrapping ErrDelegation for anything other than a clean
// optimal/infeasible/unbounded outcome.
type Backend interface {
	Solve(p Problem) (Result, error)
}
