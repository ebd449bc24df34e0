package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalMoves       int
	WrappedMoves     int         // destination search wrapped from 1 to N
	MeanSkipped      float64     // mean held candidates passed over per move
	MaxSkipped       int         // never above 3
	SkipDistribution map[int]int // skipped count → number of moves
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		SkipDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalMoves = len(st.Moves)
	if summary.TotalMoves == 0 {
		return summary
	}

	totalSkipped := 0
	for _, m := range st.Moves {
		if m.Destination >= m.Current {
			summary.WrappedMoves++
		}
		summary.SkipDistribution[m.Skipped]++
		totalSkipped += m.Skipped
		if m.Skipped > summary.MaxSkipped {
			summary.MaxSkipped = m.Skipped
		}
	}
	summary.MeanSkipped = float64(totalSkipped) / float64(summary.TotalMoves)

	return summary
}
