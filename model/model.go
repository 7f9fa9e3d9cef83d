package model

import "math"

// FeasTol is the explicit numeric tolerance used by every feasibility
// check in this package: a coverage row i is satisfied when
// (Ax)_i ≥ b_i − FeasTol, a capacity row j when (Bx)_j ≤ f_j + FeasTol.
// It is a structural tolerance against floating-point drift, not a
// slack parameter; solvers must not rely on it for correctness.
const FeasTol = 1e-9

// Model is the capability contract shared by all instance types.
// Algorithms declare the concrete type they need (e.g. *Knapsack) when
// they read specialized fields, and accept Model where the shared
// surface suffices.
type Model interface {
	// Validate re-runs the construction-time checks. It is a no-op
	// returning nil on any instance built by a New* constructor; it
	// exists so zero-value or hand-assembled instances can be rejected
	// deterministically at the construction boundary.
	Validate() error

	// VariableCount reports the number of decision variables n (≥ 1).
	VariableCount() int

	// Costs returns a copy of the objective coefficient vector.
	Costs() []float64

	// CostOf sums the objective coefficients of the selected indices.
	// Out-of-range indices are ignored.
	CostOf(selected []int) float64

	// IsFeasible reports whether the assignment x (length n, entries in
	// [0, upper bound]) satisfies every constraint of the instance
	// within FeasTol.
	IsFeasible(x []float64) bool
}

// base carries the objective vector shared by all instance types.
type base struct {
	costs []float64
}

// newBase copies and validates the cost vector: non-empty, finite,
// non-negative.
func newBase(costs []float64) (base, error) {
	if len(costs) == 0 {
		return base{}, ErrNoVariables
	}
	if err := checkFiniteNonNegative(costs); err != nil {
		return base{}, err
	}
	c := make([]float64, len(costs))
	copy(c, costs)

	return base{costs: c}, nil
}

// VariableCount reports the number of decision variables.
func (b *base) VariableCount() int { return len(b.costs) }

// Costs returns a copy of the objective coefficient vector.
func (b *base) Costs() []float64 {
	out := make([]float64, len(b.costs))
	copy(out, b.costs)

	return out
}

// CostOf sums the objective coefficients of the selected indices.
func (b *base) CostOf(selected []int) float64 {
	var total float64
	for _, i := range selected {
		if i >= 0 && i < len(b.costs) {
			total += b.costs[i]
		}
	}

	return total
}

// checkFiniteNonNegative rejects NaN/Inf and negative entries.
func checkFiniteNonNegative(vals []float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegativeEntry
		}
	}

	return nil
}

// checkScalar rejects a non-finite or negative scalar.
func checkScalar(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegativeEntry
	}

	return nil
}

// copyMatrix deep-copies a rectangular matrix after validating that all
// rows share the given width and all entries are finite, non-negative.
func copyMatrix(m [][]float64, width int) ([][]float64, error) {
	out := make([][]float64, len(m))
	for i, row := range m {
		if len(row) != width {
			return nil, ErrDimensionMismatch
		}
		if err := checkFiniteNonNegative(row); err != nil {
			return nil, err
		}
		out[i] = make([]float64, width)
		copy(out[i], row)
	}

	return out, nil
}

// dot computes aᵀx for equal-length slices.
func dot(a, x []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * x[i]
	}

	return s
}
