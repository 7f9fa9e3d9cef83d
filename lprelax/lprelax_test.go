// Package lprelax_test validates the simplex backend and the model
// drivers against hand-solvable relaxations.
package lprelax_test

import (
	"testing"

	"github.com/katalvlaran/coverpack/knapsack"
	"github.com/katalvlaran/coverpack/lprelax"
	"github.com/katalvlaran/coverpack/minknapsack"
	"github.com/katalvlaran/coverpack/model"
	"github.com/katalvlaran/coverpack/solve"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Backend-level behavior.
// ------------------------------------------------------------------------

// TestSimplex_BadProblem rejects dimensional inconsistency before any
// solving happens.
func TestSimplex_BadProblem(t *testing.T) {
	_, err := lprelax.Simplex{}.Solve(lprelax.Problem{})
	require.ErrorIs(t, err, lprelax.ErrBadProblem)

	_, err = lprelax.Simplex{}.Solve(lprelax.Problem{
		Minimize: true,
		Costs:    []float64{1, 2},
		CovA:     [][]float64{{1}},
		CovB:     []float64{1},
	})
	require.ErrorIs(t, err, lprelax.ErrBadProblem)
}

// TestSimplex_Unbounded detects a maximization with nothing holding
// the variable down.
func TestSimplex_Unbounded(t *testing.T) {
	res, err := lprelax.Simplex{}.Solve(lprelax.Problem{
		Minimize: false,
		Costs:    []float64{1},
	})
	require.NoError(t, err)
	require.Equal(t, lprelax.StatusUnbounded, res.Status)
}

// TestSimplex_DualValues pins the diagonal covering LP
// min 2x₁+3x₂ s.t. x₁ ≥ 1, x₂ ≥ 1: the row prices equal the costs.
func TestSimplex_DualValues(t *testing.T) {
	res, err := lprelax.Simplex{}.Solve(lprelax.Problem{
		Minimize: true,
		Costs:    []float64{2, 3},
		CovA:     [][]float64{{1, 0}, {0, 1}},
		CovB:     []float64{1, 1},
	})
	require.NoError(t, err)
	require.Equal(t, lprelax.StatusOptimal, res.Status)
	require.InDelta(t, 5.0, res.Objective, 1e-9)
	require.InDelta(t, 1.0, res.X[0], 1e-9)
	require.InDelta(t, 1.0, res.X[1], 1e-9)

	require.Len(t, res.Duals, 2)
	require.InDelta(t, 2.0, res.Duals[0], 1e-9)
	require.InDelta(t, 3.0, res.Duals[1], 1e-9)
}

// ------------------------------------------------------------------------
// 2. Model drivers.
// ------------------------------------------------------------------------

// TestCovering_FractionalOptimum solves the odd-cycle vertex cover
// relaxation, whose optimum is the all-half assignment.
func TestCovering_FractionalOptimum(t *testing.T) {
	m, err := model.NewCovering(
		[]float64{1, 1, 1},
		[][]float64{
			{1, 1, 0},
			{0, 1, 1},
			{1, 0, 1},
		},
		[]float64{1, 1, 1},
		model.WithUpperBounds([]float64{1, 1, 1}),
	)
	require.NoError(t, err)

	s, duals, err := lprelax.Covering(m, nil)
	require.NoError(t, err)
	require.Equal(t, solve.StatusOptimal, s.Status)
	require.InDelta(t, 1.5, s.Objective, 1e-9)
	for _, v := range s.X {
		require.InDelta(t, 0.5, v, 1e-9)
	}
	require.Len(t, duals, 3)
}

// TestCovering_Infeasible maps an uncoverable row onto the canonical
// infeasible solution.
func TestCovering_Infeasible(t *testing.T) {
	m, err := model.NewCovering(
		[]float64{1, 1},
		[][]float64{{0, 0}},
		[]float64{1},
	)
	require.NoError(t, err)

	s, duals, err := lprelax.Covering(m, lprelax.Simplex{})
	require.NoError(t, err)
	require.Equal(t, solve.StatusInfeasible, s.Status)
	require.Nil(t, duals)
	require.Empty(t, s.Selected)
}

// TestPacking_MatchesSortingSolver cross-checks the LP backend against
// the analytic fractional knapsack on the single-row relaxation.
func TestPacking_MatchesSortingSolver(t *testing.T) {
	values := []float64{3, 4, 5}
	weights := []float64{2, 3, 4}
	const capacity = 5.0

	km, err := model.NewKnapsack(values, weights, capacity)
	require.NoError(t, err)
	analytic := knapsack.Fractional(km)

	pm, err := model.NewPacking(values, [][]float64{weights}, []float64{capacity})
	require.NoError(t, err)

	s, _, err := lprelax.Packing(pm, nil)
	require.NoError(t, err)
	require.Equal(t, solve.StatusOptimal, s.Status)
	require.InDelta(t, analytic.Objective, s.Objective, 1e-9)
}

// TestMinKnapsack_LowerBound verifies the relaxation optimum bounds the
// integral solvers from below on the pinned instance: the LP takes the
// cheapest-per-unit items fractionally for 3.25 against the integral 4.
func TestMinKnapsack_LowerBound(t *testing.T) {
	m, err := model.NewMinKnapsack([]float64{3, 4, 1}, []float64{4, 5, 2}, 5)
	require.NoError(t, err)

	s, _, err := lprelax.MinKnapsack(m, nil)
	require.NoError(t, err)
	require.Equal(t, solve.StatusOptimal, s.Status)
	require.InDelta(t, 3.25, s.Objective, 1e-9)

	exact := minknapsack.Exact(m)
	require.LessOrEqual(t, s.Objective, exact.Objective)
}

// TestDefaultBackend returns a ready simplex.
func TestDefaultBackend(t *testing.T) {
	be := lprelax.DefaultBackend()
	require.IsType(t, lprelax.Simplex{}, be)
}
