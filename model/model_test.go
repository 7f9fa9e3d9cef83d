// Package model_test validates model construction, the staged
// validation rules, and the feasibility oracles.
package model_test

import (
	"testing"

	"github.com/katalvlaran/coverpack/model"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Construction errors shared by all families.
// ------------------------------------------------------------------------

// TestNewCovering_NoVariables verifies that an empty cost vector is
// rejected before any matrix validation runs.
func TestNewCovering_NoVariables(t *testing.T) {
	_, err := model.NewCovering(nil, nil, nil)
	require.ErrorIs(t, err, model.ErrNoVariables)
}

// TestNewCovering_DimensionMismatch covers ragged and mismatched shapes.
func TestNewCovering_DimensionMismatch(t *testing.T) {
	costs := []float64{1, 2}

	// Row width differs from the number of variables.
	_, err := model.NewCovering(costs, [][]float64{{1, 0, 3}}, []float64{1})
	require.ErrorIs(t, err, model.ErrDimensionMismatch)

	// Row count differs from the requirement count.
	_, err = model.NewCovering(costs, [][]float64{{1, 0}}, []float64{1, 2})
	require.ErrorIs(t, err, model.ErrDimensionMismatch)
}

// TestNewCovering_NegativeAndNonFinite checks entry-level validation of
// costs, coverage entries and requirements.
func TestNewCovering_NegativeAndNonFinite(t *testing.T) {
	_, err := model.NewCovering([]float64{-1}, [][]float64{{1}}, []float64{1})
	require.ErrorIs(t, err, model.ErrNegativeEntry)

	_, err = model.NewCovering([]float64{1}, [][]float64{{-2}}, []float64{1})
	require.ErrorIs(t, err, model.ErrNegativeEntry)

	nan := 0.0
	nan /= nan
	_, err = model.NewCovering([]float64{1}, [][]float64{{nan}}, []float64{1})
	require.ErrorIs(t, err, model.ErrNaNInf)
}

// TestNewCovering_VacuousRow distinguishes the two all-zero row cases:
// a zero row with zero requirement is rejected at construction, while a
// zero row with positive requirement is a legal (unsatisfiable) model.
func TestNewCovering_VacuousRow(t *testing.T) {
	costs := []float64{1, 1}

	_, err := model.NewCovering(costs, [][]float64{{0, 0}}, []float64{0})
	require.ErrorIs(t, err, model.ErrVacuousRow)

	m, err := model.NewCovering(costs, [][]float64{{0, 0}}, []float64{3})
	require.NoError(t, err)
	require.False(t, m.IsFeasible([]float64{1, 1}))
}

// ------------------------------------------------------------------------
// 2. Covering accessors and feasibility.
// ------------------------------------------------------------------------

// TestCovering_AccessorsCopy ensures accessors return deep copies, so
// callers cannot mutate model state.
func TestCovering_AccessorsCopy(t *testing.T) {
	m, err := model.NewCovering(
		[]float64{1, 2},
		[][]float64{{1, 1}},
		[]float64{1},
	)
	require.NoError(t, err)

	a := m.CoverageMatrix()
	a[0][0] = 99
	require.Equal(t, 1.0, m.CoverageMatrix()[0][0])

	b := m.Requirements()
	b[0] = 99
	require.Equal(t, 1.0, m.Requirements()[0])

	c := m.Costs()
	c[1] = 99
	require.Equal(t, 2.0, m.CostOf([]int{1}))
}

// TestCovering_IsFeasible exercises the coverage, capacity and bound
// checks of the feasibility oracle.
func TestCovering_IsFeasible(t *testing.T) {
	m, err := model.NewCovering(
		[]float64{1, 1},
		[][]float64{{2, 0}, {0, 3}},
		[]float64{2, 1.5},
		model.WithCapacity([][]float64{{1, 1}}, []float64{1.5}),
		model.WithUpperBounds([]float64{1, 1}),
	)
	require.NoError(t, err)

	require.True(t, m.IsFeasible([]float64{1, 0.5})) // covers both rows, capacity 1.5
	require.False(t, m.IsFeasible([]float64{1, 0.2})) // second row short
	require.False(t, m.IsFeasible([]float64{1, 1}))   // capacity exceeded
	require.False(t, m.IsFeasible([]float64{2, 0}))   // upper bound exceeded
	require.False(t, m.IsFeasible([]float64{1}))      // wrong length
}

// TestCovering_OptionDimensions verifies that the capacity and bound
// options are validated against the variable count.
func TestCovering_OptionDimensions(t *testing.T) {
	costs := []float64{1, 1}
	a := [][]float64{{1, 1}}
	b := []float64{1}

	_, err := model.NewCovering(costs, a, b,
		model.WithCapacity([][]float64{{1}}, []float64{1}))
	require.ErrorIs(t, err, model.ErrDimensionMismatch)

	_, err = model.NewCovering(costs, a, b,
		model.WithUpperBounds([]float64{1}))
	require.ErrorIs(t, err, model.ErrDimensionMismatch)
}

// ------------------------------------------------------------------------
// 3. Packing.
// ------------------------------------------------------------------------

// TestPacking_IsFeasible checks the 0-1 default bounds and explicit
// upper bounds.
func TestPacking_IsFeasible(t *testing.T) {
	m, err := model.NewPacking(
		[]float64{3, 4},
		[][]float64{{2, 3}},
		[]float64{5},
	)
	require.NoError(t, err)

	require.True(t, m.IsFeasible([]float64{1, 1}))  // weight 5 == limit
	require.False(t, m.IsFeasible([]float64{2, 0})) // 0-1 bound exceeded

	bounded, err := model.NewPacking(
		[]float64{3, 4},
		[][]float64{{2, 3}},
		[]float64{10},
		model.WithPackingUpperBounds([]float64{3, 1}),
	)
	require.NoError(t, err)
	require.True(t, bounded.IsFeasible([]float64{2, 1})) // weight 7, within d
	require.False(t, bounded.IsFeasible([]float64{2, 2}))
}

// ------------------------------------------------------------------------
// 4. Knapsack and minimization knapsack.
// ------------------------------------------------------------------------

// TestKnapsack_Basics covers construction and the feasibility oracle.
func TestKnapsack_Basics(t *testing.T) {
	m, err := model.NewKnapsack([]float64{3, 4, 5}, []float64{2, 3, 4}, 5)
	require.NoError(t, err)
	require.Equal(t, 3, m.VariableCount())
	require.Equal(t, 5.0, m.Capacity())
	require.Equal(t, 4.0, m.Weight(2))
	require.Equal(t, 4.0, m.Value(1))

	require.True(t, m.IsFeasible([]float64{1, 1, 0}))  // weight 5
	require.False(t, m.IsFeasible([]float64{1, 0, 1})) // weight 6
	require.False(t, m.IsFeasible([]float64{1, 1, 0.5}))

	_, err = model.NewKnapsack([]float64{1}, []float64{1, 2}, 3)
	require.ErrorIs(t, err, model.ErrDimensionMismatch)

	_, err = model.NewKnapsack([]float64{1}, []float64{1}, -1)
	require.ErrorIs(t, err, model.ErrNegativeEntry)
}

// TestMinKnapsack_Infeasible verifies the aggregate-weight infeasibility
// flag and the demand-side oracle.
func TestMinKnapsack_Infeasible(t *testing.T) {
	m, err := model.NewMinKnapsack([]float64{3, 4, 1}, []float64{4, 5, 2}, 5)
	require.NoError(t, err)
	require.False(t, m.Infeasible())
	require.True(t, m.IsFeasible([]float64{1, 0, 1}))  // weight 6 ≥ 5
	require.False(t, m.IsFeasible([]float64{0, 0, 1})) // weight 2 < 5

	short, err := model.NewMinKnapsack([]float64{1, 1}, []float64{2, 2}, 10)
	require.NoError(t, err)
	require.True(t, short.Infeasible())
}
