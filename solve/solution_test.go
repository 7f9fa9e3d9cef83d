package solve_test

import (
	"testing"

	"github.com/katalvlaran/coverpack/solve"
	"github.com/stretchr/testify/require"
)

// TestIntegral_SortsAndCopies verifies that the constructor sorts the
// index set, expands the 0/1 vector, and does not alias the input.
func TestIntegral_SortsAndCopies(t *testing.T) {
	sel := []int{3, 0, 2}
	s := solve.Integral(sel, 5, 7.5, solve.StatusApproximate, 2)

	require.Equal(t, []int{0, 2, 3}, s.Selected)
	require.Equal(t, []float64{1, 0, 1, 1, 0}, s.X)
	require.Equal(t, 7.5, s.Objective)
	require.Equal(t, solve.StatusApproximate, s.Status)
	require.Equal(t, 2.0, s.Ratio)

	// Mutating the caller's slice must not leak into the Solution.
	sel[0] = 4
	require.Equal(t, []int{0, 2, 3}, s.Selected)
}

// TestFractional_SelectsPositives verifies that Selected collects the
// strictly positive entries of the assignment.
func TestFractional_SelectsPositives(t *testing.T) {
	x := []float64{0, 0.5, 0, 1}
	s := solve.Fractional(x, 3.25, solve.StatusOptimal)

	require.Equal(t, []int{1, 3}, s.Selected)
	require.Equal(t, x, s.X)
	require.Equal(t, solve.StatusOptimal, s.Status)
	require.Zero(t, s.Ratio)

	x[1] = 0.9
	require.Equal(t, 0.5, s.X[1], "assignment must be copied")
}

// TestInfeasible_Canonical checks the canonical infeasible shape: no
// selection, a zero vector of the right length, zero objective.
func TestInfeasible_Canonical(t *testing.T) {
	s := solve.Infeasible(3)

	require.Empty(t, s.Selected)
	require.Equal(t, []float64{0, 0, 0}, s.X)
	require.Zero(t, s.Objective)
	require.Equal(t, solve.StatusInfeasible, s.Status)
}

// TestAsMap exports only selected indices.
func TestAsMap(t *testing.T) {
	s := solve.Fractional([]float64{0.25, 0, 1}, 1.25, solve.StatusOptimal)
	require.Equal(t, map[int]float64{0: 0.25, 2: 1}, s.AsMap())

	require.Empty(t, solve.Infeasible(2).AsMap())
}

// TestStatus_String covers the canonical tag names.
func TestStatus_String(t *testing.T) {
	require.Equal(t, "optimal", solve.StatusOptimal.String())
	require.Equal(t, "approximate", solve.StatusApproximate.String())
	require.Equal(t, "infeasible", solve.StatusInfeasible.String())
	require.Equal(t, "unknown", solve.Status(9).String())
}
