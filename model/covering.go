package model

// Covering is a covering integer program
//
//	min cᵀx   s.t.  Ax ≥ b,  Bx ≤ f,  x ≤ d,  x ≥ 0
//
// with non-negative data. The capacity block (B, f) and the per-variable
// upper bounds d are optional. Instances are immutable after
// construction.
type Covering struct {
	base
	a   [][]float64 // coverage matrix, rows × n
	b   []float64   // coverage requirements, one per row
	cap [][]float64 // optional capacity matrix, capRows × n
	lim []float64   // optional capacity limits, one per capacity row
	ub  []float64   // optional per-variable upper bounds
}

// CoveringOption configures optional blocks of a Covering instance.
type CoveringOption func(*Covering)

// WithCapacity attaches capacitated rows Bx ≤ f. Dimensions are
// validated in NewCovering.
func WithCapacity(capacity [][]float64, limits []float64) CoveringOption {
	return func(c *Covering) {
		c.cap = capacity
		c.lim = limits
	}
}

// WithUpperBounds attaches per-variable multiplicity bounds x ≤ d.
func WithUpperBounds(d []float64) CoveringOption {
	return func(c *Covering) { c.ub = d }
}

// NewCovering builds and validates a covering instance.
//
// Validation stages:
//  1. costs: non-empty, finite, non-negative.
//  2. coverage block: rectangular, finite, non-negative; len(b) == rows;
//     requirements finite, non-negative; a row that is all-zero with a
//     zero requirement is vacuous and rejected (an all-zero row with a
//     positive requirement is kept — solvers report it as infeasible).
//  3. optional capacity block and upper bounds: consistent dimensions,
//     finite, non-negative.
//
// Complexity: O(rows·n + capRows·n).
func NewCovering(costs []float64, coverage [][]float64, requirements []float64, opts ...CoveringOption) (*Covering, error) {
	bs, err := newBase(costs)
	if err != nil {
		return nil, err
	}
	n := len(costs)

	if len(coverage) != len(requirements) {
		return nil, ErrDimensionMismatch
	}
	a, err := copyMatrix(coverage, n)
	if err != nil {
		return nil, err
	}
	if err = checkFiniteNonNegative(requirements); err != nil {
		return nil, err
	}
	req := make([]float64, len(requirements))
	copy(req, requirements)

	for i, row := range a {
		if req[i] == 0 && rowAllZero(row) {
			return nil, ErrVacuousRow
		}
	}

	c := &Covering{base: bs, a: a, b: req}
	for _, opt := range opts {
		opt(c)
	}

	// Optional capacity block.
	if c.cap != nil || c.lim != nil {
		if len(c.cap) != len(c.lim) {
			return nil, ErrDimensionMismatch
		}
		if c.cap, err = copyMatrix(c.cap, n); err != nil {
			return nil, err
		}
		if err = checkFiniteNonNegative(c.lim); err != nil {
			return nil, err
		}
		lim := make([]float64, len(c.lim))
		copy(lim, c.lim)
		c.lim = lim
	}

	// Optional upper bounds.
	if c.ub != nil {
		if len(c.ub) != n {
			return nil, ErrDimensionMismatch
		}
		if err = checkFiniteNonNegative(c.ub); err != nil {
			return nil, err
		}
		ub := make([]float64, n)
		copy(ub, c.ub)
		c.ub = ub
	}

	return c, nil
}

// Validate reports nil for constructor-built instances and
// ErrNoVariables for zero values.
func (c *Covering) Validate() error {
	if len(c.costs) == 0 {
		return ErrNoVariables
	}

	return nil
}

// Rows reports the number of coverage constraints.
func (c *Covering) Rows() int { return len(c.a) }

// CapacityRows reports the number of capacity constraints (0 when the
// capacity block is absent).
func (c *Covering) CapacityRows() int { return len(c.cap) }

// CoverageMatrix returns a deep copy of A, ready to be used as residual
// working state by an algorithm run.
func (c *Covering) CoverageMatrix() [][]float64 { return deepCopy(c.a) }

// Requirements returns a copy of b.
func (c *Covering) Requirements() []float64 {
	out := make([]float64, len(c.b))
	copy(out, c.b)

	return out
}

// CapacityMatrix returns a deep copy of B, or nil when absent.
func (c *Covering) CapacityMatrix() [][]float64 {
	if c.cap == nil {
		return nil
	}

	return deepCopy(c.cap)
}

// CapacityLimits returns a copy of f, or nil when absent.
func (c *Covering) CapacityLimits() []float64 {
	if c.lim == nil {
		return nil
	}
	out := make([]float64, len(c.lim))
	copy(out, c.lim)

	return out
}

// UpperBounds returns a copy of d, or nil when every variable is
// unbounded (0-1 semantics are the caller's convention).
func (c *Covering) UpperBounds() []float64 {
	if c.ub == nil {
		return nil
	}
	out := make([]float64, len(c.ub))
	copy(out, c.ub)

	return out
}

// IsFeasible reports whether x satisfies Ax ≥ b, Bx ≤ f, and
// 0 ≤ x ≤ d within FeasTol.
func (c *Covering) IsFeasible(x []float64) bool {
	if len(x) != len(c.costs) {
		return false
	}
	for i, v := range x {
		if v < -FeasTol {
			return false
		}
		if c.ub != nil && v > c.ub[i]+FeasTol {
			return false
		}
	}
	for i, row := range c.a {
		if dot(row, x) < c.b[i]-FeasTol {
			return false
		}
	}
	for i, row := range c.cap {
		if dot(row, x) > c.lim[i]+FeasTol {
			return false
		}
	}

	return true
}

// rowAllZero reports whether a row has no strictly positive entry.
func rowAllZero(row []float64) bool {
	for _, v := range row {
		if v > 0 {
			return false
		}
	}

	return true
}

// deepCopy clones a rectangular matrix without validation.
func deepCopy(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}
