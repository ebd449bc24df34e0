// Package sim provides the ring-rotation engine for the cup game.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - ring.go: the successor array (RingStore) and its single-cycle check
//   - extend.go: one-time growth of a short ring to N cups
//   - simulator.go: the per-round move and the run loop
//   - result.go: reading answers off the final ring
//
// # Representation
//
// Labels are the dense integers 1..N, so the ring is stored as one flat slice
// indexed by label: next[l] is the label clockwise of l. Every link change is a
// single slice write and the run loop never allocates.
//
// Destination search only ever skips the three held labels, so it ends after at
// most four candidates. No predecessor array is needed.
package sim
