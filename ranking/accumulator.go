package ranking

// Accumulator tracks consumption against a fixed limit during a greedy
// fill. The zero value is an accumulator with zero limit.
type Accumulator struct {
	Limit float64
	Used  float64
}

// NewAccumulator returns an empty accumulator with the given limit.
func NewAccumulator(limit float64) Accumulator {
	return Accumulator{Limit: limit}
}

// Fits reports whether adding w stays within the limit. The comparison
// is exact: capacity constraints admit no tolerance on the fill path.
func (a Accumulator) Fits(w float64) bool {
	return a.Used+w <= a.Limit
}

// Add consumes w units.
func (a *Accumulator) Add(w float64) { a.Used += w }

// Remove releases w units (local-search swaps).
func (a *Accumulator) Remove(w float64) { a.Used -= w }

// Remaining reports the unused capacity, never negative.
func (a Accumulator) Remaining() float64 {
	if r := a.Limit - a.Used; r > 0 {
		return r
	}

	return 0
}
