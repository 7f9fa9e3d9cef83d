package model

// MinKnapsack is the 0-1 minimization knapsack problem: select items
// whose total weight meets a single demand, minimizing total cost,
//
//	min cᵀx   s.t.  wᵀx ≥ demand,  x ∈ {0, 1}ⁿ.
type MinKnapsack struct {
	base
	weights []float64
	demand  float64
}

// NewMinKnapsack builds and validates a min-cost knapsack instance:
// len(costs) == len(weights) ≥ 1, all data finite and non-negative.
//
// An instance whose total weight cannot meet the demand is accepted and
// flagged: Infeasible() reports true and every solver short-circuits to
// StatusInfeasible. Infeasibility is a legitimate outcome, not a
// construction error.
//
// Complexity: O(n).
func NewMinKnapsack(costs, weights []float64, demand float64) (*MinKnapsack, error) {
	bs, err := newBase(costs)
	if err != nil {
		return nil, err
	}
	if len(weights) != len(costs) {
		return nil, ErrDimensionMismatch
	}
	if err = checkFiniteNonNegative(weights); err != nil {
		return nil, err
	}
	if err = checkScalar(demand); err != nil {
		return nil, err
	}
	w := make([]float64, len(weights))
	copy(w, weights)

	return &MinKnapsack{base: bs, weights: w, demand: demand}, nil
}

// Validate reports nil for constructor-built instances and
// ErrNoVariables for zero values.
func (m *MinKnapsack) Validate() error {
	if len(m.costs) == 0 {
		return ErrNoVariables
	}

	return nil
}

// Weights returns a copy of the item weights.
func (m *MinKnapsack) Weights() []float64 {
	out := make([]float64, len(m.weights))
	copy(out, m.weights)

	return out
}

// Weight reports the weight of item i.
func (m *MinKnapsack) Weight(i int) float64 { return m.weights[i] }

// Cost reports the cost of item i.
func (m *MinKnapsack) Cost(i int) float64 { return m.costs[i] }

// Demand reports the coverage requirement.
func (m *MinKnapsack) Demand() float64 { return m.demand }

// Infeasible reports whether even the full selection falls short of the
// demand, i.e. sum(weights) < demand − FeasTol.
func (m *MinKnapsack) Infeasible() bool {
	var total float64
	for _, w := range m.weights {
		total += w
	}

	return total < m.demand-FeasTol
}

// IsFeasible reports whether x satisfies wᵀx ≥ demand and 0 ≤ x ≤ 1
// within FeasTol.
func (m *MinKnapsack) IsFeasible(x []float64) bool {
	if len(x) != len(m.costs) {
		return false
	}
	for _, v := range x {
		if v < -FeasTol || v > 1+FeasTol {
			return false
		}
	}

	return dot(m.weights, x) >= m.demand-FeasTol
}
