package lprelax

import (
	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/solve"
)

// DefaultBackend returns the backend the model drivers fall back to
// when handed nil: the pure-Go Simplex with default tolerance.
func DefaultBackend() Backend { return Simplex{} }

// Covering solves the continuous relaxation of a covering model:
//
//	min cᵀx  s.t.  Ax ≥ b,  Bx ≤ f,  0 ≤ x ≤ d.
//
// The second return value holds the dual prices of the coverage rows
// followed by the capacity rows, or nil when the backend does not
// produce duals. An unbounded relaxation (impossible for validated
// covering inputs, which have non-negative costs) returns ErrUnbounded.
func Covering(m *model.Covering, be Backend) (solve.Solution, []float64, error) {
	if err := m.Validate(); err != nil {
		return solve.Solution{}, nil, err
	}
	p := Problem{
		Minimize: true,
		Costs:    m.Costs(),
		CovA:     m.CoverageMatrix(),
		CovB:     m.Requirements(),
		PackA:    m.CapacityMatrix(),
		PackB:    m.CapacityLimits(),
		Upper:    m.UpperBounds(),
	}
	return run(p, be, m.VariableCount())
}

// Packing solves the continuous relaxation of a packing model:
//
//	max pᵀx  s.t.  Wx ≤ f,  0 ≤ x ≤ d
//
// with d = 1 when the model carries no explicit upper bounds.
func Packing(m *model.Packing, be Backend) (solve.Solution, []float64, error) {
	if err := m.Validate(); err != nil {
		return solve.Solution{}, nil, err
	}
	n := m.VariableCount()
	ub := m.UpperBounds()
	if ub == nil {
		ub = make([]float64, n)
		for j := range ub {
			ub[j] = 1
		}
	}
	p := Problem{
		Minimize: false,
		Costs:    m.Costs(),
		PackA:    m.WeightMatrix(),
		PackB:    m.CapacityLimits(),
		Upper:    ub,
	}
	return run(p, be, n)
}

// MinKnapsack solves the continuous relaxation of a minimization
// knapsack: min cᵀx s.t. wᵀx ≥ D, 0 ≤ x ≤ 1. Its optimum is the
// natural lower bound for the integral solvers.
func MinKnapsack(m *model.MinKnapsack, be Backend) (solve.Solution, []float64, error) {
	if err := m.Validate(); err != nil {
		return solve.Solution{}, nil, err
	}
	n := m.VariableCount()
	ub := make([]float64, n)
	for j := range ub {
		ub[j] = 1
	}
	p := Problem{
		Minimize: true,
		Costs:    m.Costs(),
		CovA:     [][]float64{m.Weights()},
		CovB:     []float64{m.Demand()},
		Upper:    ub,
	}
	return run(p, be, n)
}

// run dispatches to the backend and maps its Result onto the shared
// solution type.
func run(p Problem, be Backend, n int) (solve.Solution, []float64, error) {
	if be == nil {
		be = DefaultBackend()
	}
	res, err := be.Solve(p)
	if err != nil {
		return solve.Solution{}, nil, err
	}
	switch res.Status {
	case StatusInfeasible:
		return solve.Infeasible(n), nil, nil
	case StatusUnbounded:
		return solve.Solution{}, nil, ErrUnbounded
	}
	return solve.Fractional(res.X, res.Objective, solve.StatusOptimal), res.Duals, nil
}
