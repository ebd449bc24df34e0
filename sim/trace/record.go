// Package trace provides move-trace recording for inspecting a cup game.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

import "fmt"

// MoveRecord captures a single round of the game.
type MoveRecord struct {
	Round       int64  // 1-based round number
	Current     int    // cup the round started from
	Held        [3]int // cups picked up, in clockwise order
	Destination int    // cup the held cups were placed after
	Skipped     int    // candidates passed over because they were held (0..3)
}

// String renders the record in the puzzle's move-listing style.
func (m MoveRecord) String() string {
	return fmt.Sprintf("-- move %d -- current: %d pick up: %d, %d, %d destination: %d",
		m.Round, m.Current, m.Held[0], m.Held[1], m.Held[2], m.Destination)
}
