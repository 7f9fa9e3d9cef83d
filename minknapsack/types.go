package minknapsack

import "errors"

// DEFAULTS — single source of truth for GRASP configuration.
const (
	// DefaultRestarts is the number of randomized constructions kept
	// best-of when Options.Restarts is 0.
	DefaultRestarts = 16

	// DefaultGreediness is the restricted-candidate-list threshold α
	// applied when Options.Greediness is 0: a candidate with unit cost
	// u enters the list when α·u ≤ best unit cost. α = 1 is pure
	// greedy; values near 0 admit almost every candidate.
	DefaultGreediness = 0.8
)

var (
	// ErrBadEpsilon is returned by FPTAS when ε lies outside (0, 1).
	ErrBadEpsilon = errors.New("minknapsack: epsilon must lie in (0,1)")

	// ErrBadRestarts is returned by GRASP for a negative restart count.
	ErrBadRestarts = errors.New("minknapsack: restarts must be non-negative")

	// ErrBadGreediness is returned by GRASP when α lies outside [0, 1].
	ErrBadGreediness = errors.New("minknapsack: greediness must lie in [0,1]")
)

// Options configures GRASP. The zero value selects the documented
// defaults, keeping runs stable across versions.
type Options struct {
	// Restarts is the number of randomized constructions; 0 ⇒
	// DefaultRestarts. The best construction wins; ties keep the
	// earliest restart, so results are reproducible.
	Restarts int

	// Greediness is the RCL threshold α in [0, 1]; 0 ⇒ DefaultGreediness,
	// so an exact α = 0 is not expressible. For near-uniform construction
	// pass a tiny positive α (e.g. 1e-9): any candidate with a positive
	// unit cost then enters the list.
	Greediness float64

	// MaxCandidates caps the RCL size; 0 ⇒ no cap.
	MaxCandidates int

	// Seed drives every random choice. 0 selects the fixed default
	// stream (rng.DefaultSeed); equal seeds yield identical Solutions.
	Seed int64

	// SkipLocalSearch disables the swap improvement pass.
	SkipLocalSearch bool
}

// normalized applies defaults and validates ranges.
func (o Options) normalized() (Options, error) {
	if o.Restarts < 0 {
		return o, ErrBadRestarts
	}
	if o.Restarts == 0 {
		o.Restarts = DefaultRestarts
	}
	if o.Greediness < 0 || o.Greediness > 1 {
		return o, ErrBadGreediness
	}
	if o.Greediness == 0 {
		o.Greediness = DefaultGreediness
	}
	if o.MaxCandidates < 0 {
		o.MaxCandidates = 0
	}

	return o, nil
}
