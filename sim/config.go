package sim

import "fmt"

// MinRingSize is the smallest ring a round can run on: three held cups plus
// the current one.
const MinRingSize = 4

// SimConfig groups the run parameters for NewSimulator.
type SimConfig struct {
	Size          int   // total cups after extension (0 = input length)
	Rounds        int64 // rounds to execute (must be >= 0)
	ProgressEvery int64 // log a progress line every N rounds (0 = never)
}

// NewSimConfig creates a SimConfig with all fields explicitly specified.
func NewSimConfig(size int, rounds, progressEvery int64) SimConfig {
	return SimConfig{
		Size:          size,
		Rounds:        rounds,
		ProgressEvery: progressEvery,
	}
}

// resolveSize returns the ring size for an input of k cups, or a
// ConfigurationError when the settings cannot be honored.
func (c SimConfig) resolveSize(k int) (int, error) {
	if c.Rounds < 0 {
		return 0, &ConfigurationError{Field: "rounds", Value: c.Rounds, Reason: "must not be negative"}
	}
	if c.ProgressEvery < 0 {
		return 0, &ConfigurationError{Field: "progress", Value: c.ProgressEvery, Reason: "must not be negative"}
	}
	size := c.Size
	if size == 0 {
		size = k
	}
	if size < k {
		return 0, &ConfigurationError{Field: "size", Value: int64(size),
			Reason: fmt.Sprintf("must be at least the input length %d", k)}
	}
	if size < MinRingSize {
		return 0, &ConfigurationError{Field: "size", Value: int64(size),
			Reason: fmt.Sprintf("a round needs at least %d cups", MinRingSize)}
	}
	return size, nil
}
