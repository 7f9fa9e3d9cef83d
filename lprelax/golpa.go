//go:build lpsolve

package lprelax

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/costela/golpa"
)

// LPSolve is the Backend bound to the lp_solve C library through
// golpa. It is substantially faster than Simplex on large instances
// but requires cgo and liblpsolve55 at build time.
//
// lp_solve reports dual values per variable rather than per
// constraint, so Result.Duals is always nil from this backend; use
// Simplex when row prices are needed.
type LPSolve struct{}

// Solve implements Backend.
func (LPSolve) Solve(p Problem) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}
	n := len(p.Costs)

	dir := golpa.Minimize
	if !p.Minimize {
		dir = golpa.Maximize
	}
	mdl, err := golpa.NewModel("lprelax", dir)
	if err != nil {
		return Result{}, fmt.Errorf("%w: lp_solve: %v", ErrDelegation, err)
	}

	vars := make([]*golpa.Variable, n)
	for j, cj := range p.Costs {
		ub := math.Inf(1)
		if p.Upper != nil {
			ub = p.Upper[j]
		}
		v, err := mdl.AddDefinedVariable("x"+strconv.Itoa(j), golpa.ContinuousVariable, cj, 0, ub)
		if err != nil {
			return Result{}, fmt.Errorf("%w: lp_solve: %v", ErrDelegation, err)
		}
		vars[j] = v
	}

	for i, row := range p.CovA {
		if err := addRow(mdl, vars, row, p.CovB[i], math.Inf(1)); err != nil {
			return Result{}, err
		}
	}
	for i, row := range p.PackA {
		if err := addRow(mdl, vars, row, math.Inf(-1), p.PackB[i]); err != nil {
			return Result{}, err
		}
	}

	res, err := mdl.Solve()
	switch {
	case errors.Is(err, golpa.ErrModelInfeasible):
		return Result{Status: StatusInfeasible}, nil
	case errors.Is(err, golpa.ErrModelUnbounded):
		return Result{Status: StatusUnbounded}, nil
	case err != nil:
		return Result{}, fmt.Errorf("%w: lp_solve: %v", ErrDelegation, err)
	}
	if res.Status() != golpa.SolutionOptimal {
		return Result{}, fmt.Errorf("%w: lp_solve: suboptimal termination", ErrDelegation)
	}

	x := make([]float64, n)
	for j, v := range vars {
		x[j] = res.PrimalValue(v)
		if x[j] < 0 {
			x[j] = 0
		}
	}
	return Result{Status: StatusOptimal, X: x, Objective: res.ObjectiveValue()}, nil
}

// addRow registers one sparse constraint lower ≤ row·x ≤ upper,
// skipping zero coefficients.
func addRow(mdl *golpa.Model, vars []*golpa.Variable, row []float64, lower, upper float64) error {
	sv := make([]*golpa.Variable, 0, len(row))
	sc := make([]float64, 0, len(row))
	for j, v := range row {
		if v == 0 {
			continue
		}
		sv = append(sv, vars[j])
		sc = append(sc, v)
	}
	if err := mdl.AddConstraint(lower, upper, sv, sc); err != nil {
		return fmt.Errorf("%w: lp_solve: %v", ErrDelegation, err)
	}
	return nil
}
