package sim

import "fmt"

// Label identifies a cup. Valid labels are the dense range 1..N.
type Label int

// Ring holds the clockwise successor of every label in a single cycle.
// next[0] is unused so labels index the slice directly.
//
// Thread-safety: NOT thread-safe. Owned by one Simulator for its lifetime.
type Ring struct {
	next []Label
}

// NewRing builds a ring where each label is followed by the next one in
// order, and the last wraps to the first. order must be a permutation of
// 1..len(order).
func NewRing(order []Label) (*Ring, error) {
	if len(order) == 0 {
		return nil, &InvalidInputError{Position: -1, Reason: "no cups given"}
	}
	n := len(order)
	seen := make([]int, n+1) // label -> position+1, 0 means unseen
	for i, l := range order {
		if l < 1 {
			return nil, &InvalidInputError{Label: l, Position: i, Reason: "labels must be positive"}
		}
		if int(l) > n {
			return nil, &InvalidInputError{Label: l, Position: i,
				Reason: fmt.Sprintf("labels must form the dense range 1..%d", n)}
		}
		if prev := seen[l]; prev != 0 {
			return nil, &InvalidInputError{Label: l, Position: i,
				Reason: fmt.Sprintf("duplicate of position %d", prev-1)}
		}
		seen[l] = i + 1
	}

	r := &Ring{next: make([]Label, n+1)}
	for i, l := range order {
		r.next[l] = order[(i+1)%n]
	}
	return r, nil
}

// Len returns the number of cups in the ring.
func (r *Ring) Len() int { return len(r.next) - 1 }

// Successor returns the label clockwise of l.
func (r *Ring) Successor(l Label) Label {
	return r.next[l]
}

// SetSuccessor relinks l so that next follows it. Only the label range is
// checked; keeping the ring a single cycle is the caller's job.
func (r *Ring) SetSuccessor(l, next Label) {
	if !r.inRange(l) || !r.inRange(next) {
		panic(fmt.Sprintf("sim: SetSuccessor(%d, %d) outside label range 1..%d", l, next, r.Len()))
	}
	r.next[l] = next
}

func (r *Ring) inRange(l Label) bool {
	return l >= 1 && int(l) <= r.Len()
}

// Walk returns up to n labels starting at from and following successors.
func (r *Ring) Walk(from Label, n int) []Label {
	n = min(n, r.Len())
	out := make([]Label, 0, n)
	for l := from; len(out) < n; l = r.next[l] {
		out = append(out, l)
	}
	return out
}

// Validate reports whether the successor mapping is one cycle through every
// label 1..N.
func (r *Ring) Validate() error {
	n := r.Len()
	if n < 1 {
		return &InvalidInputError{Position: -1, Reason: "ring is empty"}
	}
	visited := make([]bool, n+1)
	l := Label(1)
	for steps := 0; steps < n; steps++ {
		if !r.inRange(l) {
			return &InvalidInputError{Label: l, Position: -1,
				Reason: fmt.Sprintf("successor outside label range 1..%d", n)}
		}
		if visited[l] {
			return &InvalidInputError{Label: l, Position: -1,
				Reason: fmt.Sprintf("revisited after %d steps, ring has more than one cycle", steps)}
		}
		visited[l] = true
		l = r.next[l]
	}
	if l != 1 {
		return &InvalidInputError{Label: l, Position: -1,
			Reason: fmt.Sprintf("walk of %d steps from 1 did not return to 1", n)}
	}
	return nil
}
