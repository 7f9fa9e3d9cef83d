package model

// Packing is a packing integer program
//
//	max pᵀx   s.t.  Wx ≤ f,  x ≤ d,  x ≥ 0
//
// with non-negative data. Profits play the role of the objective vector
// returned by Costs (the objective is maximized). Per-variable upper
// bounds default to 1 when absent (0-1 packing).
type Packing struct {
	base
	w   [][]float64 // weight matrix, rows × n
	lim []float64   // capacity limits, one per row
	ub  []float64   // optional per-variable upper bounds; nil ⇒ 0-1
}

// PackingOption configures optional blocks of a Packing instance.
type PackingOption func(*Packing)

// WithPackingUpperBounds attaches per-variable multiplicity bounds x ≤ d.
func WithPackingUpperBounds(d []float64) PackingOption {
	return func(p *Packing) { p.ub = d }
}

// NewPacking builds and validates a packing instance: profits non-empty,
// finite, non-negative; weight matrix rectangular with len(limits) rows;
// weights and limits finite, non-negative.
//
// Complexity: O(rows·n).
func NewPacking(profits []float64, weights [][]float64, limits []float64, opts ...PackingOption) (*Packing, error) {
	bs, err := newBase(profits)
	if err != nil {
		return nil, err
	}
	n := len(profits)

	if len(weights) != len(limits) {
		return nil, ErrDimensionMismatch
	}
	w, err := copyMatrix(weights, n)
	if err != nil {
		return nil, err
	}
	if err = checkFiniteNonNegative(limits); err != nil {
		return nil, err
	}
	lim := make([]float64, len(limits))
	copy(lim, limits)

	p := &Packing{base: bs, w: w, lim: lim}
	for _, opt := range opts {
		opt(p)
	}

	if p.ub != nil {
		if len(p.ub) != n {
			return nil, ErrDimensionMismatch
		}
		if err = checkFiniteNonNegative(p.ub); err != nil {
			return nil, err
		}
		ub := make([]float64, n)
		copy(ub, p.ub)
		p.ub = ub
	}

	return p, nil
}

// Validate reports nil for constructor-built instances and
// ErrNoVariables for zero values.
func (p *Packing) Validate() error {
	if len(p.costs) == 0 {
		return ErrNoVariables
	}

	return nil
}

// Rows reports the number of capacity constraints.
func (p *Packing) Rows() int { return len(p.w) }

// WeightMatrix returns a deep copy of W.
func (p *Packing) WeightMatrix() [][]float64 { return deepCopy(p.w) }

// CapacityLimits returns a copy of f.
func (p *Packing) CapacityLimits() []float64 {
	out := make([]float64, len(p.lim))
	copy(out, p.lim)

	return out
}

// UpperBounds returns a copy of d, or nil for 0-1 semantics.
func (p *Packing) UpperBounds() []float64 {
	if p.ub == nil {
		return nil
	}
	out := make([]float64, len(p.ub))
	copy(out, p.ub)

	return out
}

// IsFeasible reports whether x satisfies Wx ≤ f and 0 ≤ x ≤ d
// (d == 1 when no explicit bounds are attached) within FeasTol.
func (p *Packing) IsFeasible(x []float64) bool {
	if len(x) != len(p.costs) {
		return false
	}
	for i, v := range x {
		if v < -FeasTol {
			return false
		}
		hi := 1.0
		if p.ub != nil {
			hi = p.ub[i]
		}
		if v > hi+FeasTol {
			return false
		}
	}
	for i, row := range p.w {
		if dot(row, x) > p.lim[i]+FeasTol {
			return false
		}
	}

	return true
}
