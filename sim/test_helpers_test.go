package sim

import "testing"

// exampleCups is the worked example from the puzzle statement.
const exampleCups = "389125467"

// mustOrder parses s or fails the test.
func mustOrder(t *testing.T, s string) []Label {
	t.Helper()
	order, err := ParseOrder(s)
	if err != nil {
		t.Fatalf("ParseOrder(%q): %v", s, err)
	}
	return order
}

// newTestSimulator builds a simulator over s with the given size and rounds.
func newTestSimulator(t *testing.T, s string, size int, rounds int64) *Simulator {
	t.Helper()
	sim, err := NewSimulator(NewSimConfig(size, rounds, 0), mustOrder(t, s))
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return sim
}

// labels converts ints to a Label slice for table tests.
func labels(vs ...int) []Label {
	out := make([]Label, len(vs))
	for i, v := range vs {
		out[i] = Label(v)
	}
	return out
}
