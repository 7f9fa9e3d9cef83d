package model

// Knapsack is the 0-1 maximum knapsack problem: select items maximizing
// total value under a single weight capacity,
//
//	max pᵀx   s.t.  wᵀx ≤ capacity,  x ∈ {0, 1}ⁿ.
//
// Values are the objective vector returned by Costs.
type Knapsack struct {
	base
	weights  []float64
	capacity float64
}

// NewKnapsack builds and validates a 0-1 knapsack instance:
// len(values) == len(weights) ≥ 1, all data finite and non-negative.
//
// Complexity: O(n).
func NewKnapsack(values, weights []float64, capacity float64) (*Knapsack, error) {
	bs, err := newBase(values)
	if err != nil {
		return nil, err
	}
	if len(weights) != len(values) {
		return nil, ErrDimensionMismatch
	}
	if err = checkFiniteNonNegative(weights); err != nil {
		return nil, err
	}
	if err = checkScalar(capacity); err != nil {
		return nil, err
	}
	w := make([]float64, len(weights))
	copy(w, weights)

	return &Knapsack{base: bs, weights: w, capacity: capacity}, nil
}

// Validate reports nil for constructor-built instances and
// ErrNoVariables for zero values.
func (k *Knapsack) Validate() error {
	if len(k.costs) == 0 {
		return ErrNoVariables
	}

	return nil
}

// Values returns a copy of the item values (alias of Costs).
func (k *Knapsack) Values() []float64 { return k.Costs() }

// Weights returns a copy of the item weights.
func (k *Knapsack) Weights() []float64 {
	out := make([]float64, len(k.weights))
	copy(out, k.weights)

	return out
}

// Weight reports the weight of item i.
func (k *Knapsack) Weight(i int) float64 { return k.weights[i] }

// Value reports the value of item i.
func (k *Knapsack) Value(i int) float64 { return k.costs[i] }

// Capacity reports the knapsack capacity.
func (k *Knapsack) Capacity() float64 { return k.capacity }

// IsFeasible reports whether x satisfies wᵀx ≤ capacity and
// 0 ≤ x ≤ 1 within FeasTol.
func (k *Knapsack) IsFeasible(x []float64) bool {
	if len(x) != len(k.costs) {
		return false
	}
	for _, v := range x {
		if v < -FeasTol || v > 1+FeasTol {
			return false
		}
	}

	return dot(k.weights, x) <= k.capacity+FeasTol
}
