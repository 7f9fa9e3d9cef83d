package lprelax

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// DefaultSimplexTol is the reduced-cost tolerance handed to the
// simplex routine when Simplex.Tol is left zero.
const DefaultSimplexTol = 1e-10

// Simplex is the pure-Go Backend built on gonum's dense simplex
// implementation. The zero value is ready to use.
//
// The primal is rewritten into gonum's standard form via lp.Convert
// (free variables split into positive and negative parts, one slack
// per inequality). Dual values are recovered by solving the explicit
// dual program with the same routine, so Result.Duals is populated on
// every optimal outcome.
//
// Complexity: exponential in the worst case, polynomial in practice;
// memory O((m+n)·n) for the dense standard-form tableau.
type Simplex struct {
	// Tol is the reduced-cost optimality tolerance.
	// Zero selects DefaultSimplexTol.
	Tol float64
}

// Solve implements Backend.
func (s Simplex) Solve(p Problem) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}
	n := len(p.Costs)

	// gonum minimizes; flip the objective for maximization and flip
	// the reported optimum back afterwards.
	c := make([]float64, n)
	for j, cj := range p.Costs {
		if p.Minimize {
			c[j] = cj
		} else {
			c[j] = -cj
		}
	}

	g, h := s.inequalities(p, n)
	cStd, aStd, bStd := lp.Convert(c, g, h, nil, nil)

	_, xt, err := lp.Simplex(cStd, aStd, bStd, s.tol(), nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return Result{Status: StatusInfeasible}, nil
	case errors.Is(err, lp.ErrUnbounded):
		return Result{Status: StatusUnbounded}, nil
	case err != nil:
		return Result{}, fmt.Errorf("%w: simplex: %v", ErrDelegation, err)
	}

	// Convert splits each free variable into a positive and a negative
	// part; recover x as the difference and scrub solver noise.
	x := make([]float64, n)
	for j := 0; j < n; j++ {
		x[j] = xt[j] - xt[n+j]
		if x[j] < 0 && x[j] > -s.tol() {
			x[j] = 0
		}
	}

	obj := 0.0
	for j, cj := range p.Costs {
		obj += cj * x[j]
	}

	res := Result{Status: StatusOptimal, X: x, Objective: obj}
	if len(p.CovA)+len(p.PackA) > 0 {
		res.Duals = s.duals(p, c, n)
	}
	return res, nil
}

func (s Simplex) tol() float64 {
	if s.Tol == 0 {
		return DefaultSimplexTol
	}
	return s.Tol
}

// inequalities assembles the single G·x ≤ h system covering all four
// constraint groups: coverage rows (negated), packing rows,
// non-negativity (Convert treats variables as free, so 0 ≤ x must be
// stated explicitly) and finite upper bounds.
func (s Simplex) inequalities(p Problem, n int) (*mat.Dense, []float64) {
	mc, mp := len(p.CovA), len(p.PackA)
	rows := mc + mp + n
	if p.Upper != nil {
		for _, u := range p.Upper {
			if !math.IsInf(u, 1) {
				rows++
			}
		}
	}

	g := mat.NewDense(rows, n, nil)
	h := make([]float64, rows)
	r := 0
	for i, row := range p.CovA {
		for j, v := range row {
			g.Set(r, j, -v)
		}
		h[r] = -p.CovB[i]
		r++
	}
	for i, row := range p.PackA {
		for j, v := range row {
			g.Set(r, j, v)
		}
		h[r] = p.PackB[i]
		r++
	}
	for j := 0; j < n; j++ {
		g.Set(r, j, -1)
		r++
	}
	if p.Upper != nil {
		for j, u := range p.Upper {
			if math.IsInf(u, 1) {
				continue
			}
			g.Set(r, j, 1)
			h[r] = u
			r++
		}
	}
	return g, h
}

// duals solves the dual of
//
//	min cᵀx  s.t.  A'·x ≥ b', x ≥ 0
//
// where A' stacks the coverage rows, the negated packing rows and the
// negated finite upper-bound rows. The dual maximizes b'ᵀy subject to
// A'ᵀy ≤ c, y ≥ 0; the leading entries of y are the shadow prices of
// the model rows: the marginal objective change per unit of raised
// requirement (coverage) or tightened limit (packing).
//
// A dual solve failure leaves Duals nil rather than invalidating the
// primal answer.
func (s Simplex) duals(p Problem, c []float64, n int) []float64 {
	mc, mp := len(p.CovA), len(p.PackA)
	bound := 0
	if p.Upper != nil {
		for _, u := range p.Upper {
			if !math.IsInf(u, 1) {
				bound++
			}
		}
	}
	m := mc + mp + bound

	// Dual objective: max b'ᵀy, posed as min (−b')ᵀy.
	cd := make([]float64, m)
	for i, b := range p.CovB {
		cd[i] = -b
	}
	for i, f := range p.PackB {
		cd[mc+i] = f
	}

	// Dual constraints A'ᵀy ≤ c plus explicit y ≥ 0.
	g := mat.NewDense(n+m, m, nil)
	h := make([]float64, n+m)
	for j := 0; j < n; j++ {
		for i, row := range p.CovA {
			g.Set(j, i, row[j])
		}
		for i, row := range p.PackA {
			g.Set(j, mc+i, -row[j])
		}
		h[j] = c[j]
	}
	if p.Upper != nil {
		k := 0
		for j, u := range p.Upper {
			if math.IsInf(u, 1) {
				continue
			}
			g.Set(j, mc+mp+k, -1)
			cd[mc+mp+k] = u
			k++
		}
	}
	for i := 0; i < m; i++ {
		g.Set(n+i, i, -1)
	}

	cStd, aStd, bStd := lp.Convert(cd, g, h, nil, nil)
	_, yt, err := lp.Simplex(cStd, aStd, bStd, s.tol(), nil)
	if err != nil {
		return nil
	}

	y := make([]float64, mc+mp)
	for i := range y {
		y[i] = yt[i] - yt[m+i]
		if y[i] < 0 && y[i] > -s.tol() {
			y[i] = 0
		}
	}
	return y
}
