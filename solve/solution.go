package solve

import "sort"

// Status tags the outcome of an algorithm run.
type Status uint8

const (
	// StatusOptimal marks a solution proven optimal for the instance.
	StatusOptimal Status = iota

	// StatusApproximate marks a feasible solution carrying an
	// approximation guarantee or heuristic quality only.
	StatusApproximate

	// StatusInfeasible marks an instance with no feasible solution;
	// Selected is empty and Objective is 0 in this case.
	StatusInfeasible
)

// String returns the canonical lower-case tag name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusApproximate:
		return "approximate"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Solution is the immutable result of one algorithm run.
type Solution struct {
	// Selected lists chosen variable indices in ascending order.
	// For fractional solutions it lists indices with X[i] > 0.
	Selected []int

	// X is the assignment vector, length = variable count.
	// Integral algorithms produce 0/1 entries; the LP relaxation helper
	// and the fractional knapsack solver produce values in [0, 1].
	X []float64

	// Objective is the objective value of the assignment.
	Objective float64

	// Status reports optimality, approximation, or infeasibility.
	Status Status

	// Ratio is the certified worst-case approximation factor (≥ 1),
	// or 0 when the producing algorithm proves no bound.
	Ratio float64
}

// Integral builds a 0/1 Solution over n variables from the chosen index
// set. Indices are copied and sorted; duplicates are collapsed by the
// 0/1 assignment semantics.
func Integral(selected []int, n int, objective float64, status Status, ratio float64) Solution {
	sel := make([]int, len(selected))
	copy(sel, selected)
	sort.Ints(sel)

	x := make([]float64, n)
	for _, i := range sel {
		x[i] = 1
	}

	return Solution{Selected: sel, X: x, Objective: objective, Status: status, Ratio: ratio}
}

// Fractional builds a Solution from a fractional assignment vector.
// Selected collects the indices of strictly positive entries.
func Fractional(x []float64, objective float64, status Status) Solution {
	xc := make([]float64, len(x))
	copy(xc, x)

	var sel []int
	for i, v := range xc {
		if v > 0 {
			sel = append(sel, i)
		}
	}

	return Solution{Selected: sel, X: xc, Objective: objective, Status: status}
}

// Infeasible builds the canonical infeasible Solution over n variables.
func Infeasible(n int) Solution {
	return Solution{Selected: []int{}, X: make([]float64, n), Status: StatusInfeasible}
}

// AsMap exports the assignment as a plain index → value mapping, the
// serialization-friendly form handed to external tooling.
func (s Solution) AsMap() map[int]float64 {
	out := make(map[int]float64, len(s.Selected))
	for _, i := range s.Selected {
		out[i] = s.X[i]
	}

	return out
}
