package trace

import (
	"fmt"
	"io"
)

// TraceLevel controls the verbosity of move tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelMoves captures every round up to the configured limit.
	TraceLevelMoves TraceLevel = "moves"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelMoves: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
	Limit int64 // max rounds recorded (0 = unbounded)
}

// Enabled reports whether the config records anything.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelMoves
}

// SimulationTrace collects move records during a run.
type SimulationTrace struct {
	Config  TraceConfig
	Moves   []MoveRecord
	Dropped int64 // rounds not recorded because Limit was reached
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	capacity := int64(0)
	if config.Limit > 0 {
		capacity = min(config.Limit, 1<<16)
	}
	return &SimulationTrace{
		Config: config,
		Moves:  make([]MoveRecord, 0, capacity),
	}
}

// RecordMove appends a move record, or counts it as dropped once the limit is reached.
func (st *SimulationTrace) RecordMove(record MoveRecord) {
	if st.Config.Limit > 0 && int64(len(st.Moves)) >= st.Config.Limit {
		st.Dropped++
		return
	}
	st.Moves = append(st.Moves, record)
}

// WriteMoves writes one line per recorded move to w.
func (st *SimulationTrace) WriteMoves(w io.Writer) error {
	for _, m := range st.Moves {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	if st.Dropped > 0 {
		if _, err := fmt.Fprintf(w, "... %d more moves not recorded\n", st.Dropped); err != nil {
			return err
		}
	}
	return nil
}
