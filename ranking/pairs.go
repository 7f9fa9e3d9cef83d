package ranking

// Step is a node in the back-pointer tree threaded through a dynamic
// program. Following Parent links from a pair's trace back to the root
// recovers the item indices of the selection that produced the pair.
type Step struct {
	Index  int
	Parent *Step
}

// Pair is a (Value, Weight) state of a knapsack-style dynamic program,
// carrying an optional back-pointer trace.
type Pair struct {
	Value  float64
	Weight float64
	Trace  *Step
}

// Extend returns p augmented by item index with value gain dv and
// weight gain dw, linking the back-pointer chain.
func (p Pair) Extend(index int, dv, dw float64) Pair {
	return Pair{
		Value:  p.Value + dv,
		Weight: p.Weight + dw,
		Trace:  &Step{Index: index, Parent: p.Trace},
	}
}

// Path returns the item indices recorded on p's trace, innermost first.
// Indices are strictly increasing when the program scans items in order.
func (p Pair) Path() []int {
	var out []int
	for s := p.Trace; s != nil; s = s.Parent {
		out = append(out, s.Index)
	}
	// Reverse: the chain is built outermost-last.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// MergeMaxPairs merges two frontiers of a maximization DP, both sorted
// ascending in value and weight, dropping dominated pairs. A pair is
// dominated when another pair has at least its value and at most its
// weight; on exact ties the old pair wins, keeping runs deterministic.
//
// Complexity: O(len(old) + len(new)).
func MergeMaxPairs(old, add []Pair) []Pair {
	out := make([]Pair, 0, len(old)+len(add))

	i, j := 0, 0
	for i < len(old) && j < len(add) {
		o, n := old[i], add[j]
		switch {
		case o.Value >= n.Value && o.Weight <= n.Weight:
			// New pair dominated by old.
			out = append(out, o)
			i++
			j++
		case n.Value >= o.Value && n.Weight <= o.Weight:
			// Old pair dominated by new.
			out = append(out, n)
			i++
			j++
		case o.Value < n.Value:
			// Incomparable; old is the lighter, lower-value pair.
			out = append(out, o)
			i++
		default:
			out = append(out, n)
			j++
		}
	}
	out = append(out, old[i:]...)
	out = append(out, add[j:]...)

	return out
}

// MergeMinPairs merges two frontiers of a minimization DP, both sorted
// ascending in value (cost) and weight, dropping dominated pairs. A
// pair is dominated when another pair has at most its cost and at least
// its weight; on exact ties the old pair wins.
//
// Complexity: O(len(old) + len(new)).
func MergeMinPairs(old, add []Pair) []Pair {
	out := make([]Pair, 0, len(old)+len(add))

	i, j := 0, 0
	for i < len(old) && j < len(add) {
		o, n := old[i], add[j]
		switch {
		case o.Value <= n.Value && o.Weight >= n.Weight:
			// New pair dominated by old.
			out = append(out, o)
			i++
			j++
		case n.Value <= o.Value && n.Weight >= o.Weight:
			// Old pair dominated by new.
			out = append(out, n)
			i++
			j++
		case o.Value < n.Value:
			// Incomparable; old is the cheaper, lighter pair.
			out = append(out, o)
			i++
		default:
			out = append(out, n)
			j++
		}
	}
	out = append(out, old[i:]...)
	out = append(out, add[j:]...)

	return out
}
