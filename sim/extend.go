package sim

import "fmt"

// Extend grows r, built from initialOrder, to targetN cups. The new labels
// k+1..targetN are chained in increasing order between the last and the first
// label of initialOrder, where k = len(initialOrder).
//
// Extend runs once during setup; it is never part of the per-round loop.
func Extend(r *Ring, initialOrder []Label, targetN int) error {
	k := len(initialOrder)
	if targetN < k {
		return &ConfigurationError{Field: "size", Value: int64(targetN),
			Reason: fmt.Sprintf("must be at least the input length %d", k)}
	}
	if r.Len() != k {
		return &ConfigurationError{Field: "size", Value: int64(targetN),
			Reason: fmt.Sprintf("ring already holds %d cups, expected the %d-cup initial order", r.Len(), k)}
	}
	if targetN == k {
		return nil
	}

	next := make([]Label, targetN+1)
	copy(next, r.next)

	first, last := initialOrder[0], initialOrder[k-1]
	next[last] = Label(k + 1)
	for l := k + 1; l < targetN; l++ {
		next[l] = Label(l + 1)
	}
	next[targetN] = first

	r.next = next
	return nil
}
