// Package model: sentinel error set.
// Constructors MUST return these sentinels and tests MUST check them via
// errors.Is. No constructor or accessor panics on user input.

package model

import "errors"

var (
	// ErrNoVariables is returned when an instance has zero variables.
	ErrNoVariables = errors.New("model: instance needs at least one variable")

	// ErrDimensionMismatch indicates inconsistent lengths between costs,
	// matrices, requirement vectors, or bound vectors.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")

	// ErrNegativeEntry indicates a negative coefficient, cost, weight,
	// requirement, bound, or capacity. Negative data is rejected, never
	// clamped to zero.
	ErrNegativeEntry = errors.New("model: negative entry")

	// ErrNaNInf indicates a NaN or ±Inf value where finite data is required.
	ErrNaNInf = errors.New("model: NaN or Inf entry")

	// ErrVacuousRow indicates a coverage row whose coefficients are all
	// zero and whose requirement is also zero: the row constrains nothing.
	// An all-zero row with a positive requirement is accepted at
	// construction and surfaces as StatusInfeasible at solve time.
	ErrVacuousRow = errors.New("model: vacuous coverage row")
)
