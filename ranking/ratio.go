package ranking

import (
	"math"
	"sort"
)

// Item is an index tagged with a numerator/denominator pair, ordered by
// the ratio Num/Den.
type Item struct {
	Index int
	Num   float64
	Den   float64
}

// Ratio reports Num/Den; a zero denominator yields +Inf so zero-weight
// items sort first in descending (value/weight) orders and last in
// ascending (cost/weight) orders.
func (it Item) Ratio() float64 {
	if it.Den == 0 {
		return math.Inf(1)
	}

	return it.Num / it.Den
}

// ByRatioDesc sorts items by ratio descending. Ties break by smaller
// denominator, then lower index, keeping greedy fills deterministic.
//
// Complexity: O(n log n).
func ByRatioDesc(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		ri, rj := items[i].Ratio(), items[j].Ratio()
		if ri != rj {
			return ri > rj
		}
		if items[i].Den != items[j].Den {
			return items[i].Den < items[j].Den
		}

		return items[i].Index < items[j].Index
	})
}

// ByRatioAsc sorts items by ratio ascending. Ties break by larger
// denominator (more coverage per pick first), then lower index.
//
// Complexity: O(n log n).
func ByRatioAsc(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		ri, rj := items[i].Ratio(), items[j].Ratio()
		if ri != rj {
			return ri < rj
		}
		if items[i].Den != items[j].Den {
			return items[i].Den > items[j].Den
		}

		return items[i].Index < items[j].Index
	})
}
