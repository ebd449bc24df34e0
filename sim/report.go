package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cupsim/cupsim/sim/trace"
)

// Report summarizes a finished run.
type Report struct {
	Cups            string `json:"cups"`
	Size            int    `json:"size"`
	Rounds          int64  `json:"rounds"`
	LabelsAfterOne  string `json:"labels_after_one,omitempty"`
	ProductAfterOne uint64 `json:"product_after_one"`
	WallTimeMs      int64  `json:"wall_time_ms"`

	TraceSummary *trace.TraceSummary `json:"trace_summary,omitempty"` // nil unless requested
}

// NewReport reads the answers off sim's ring. The label string is only
// filled in when the ring was not extended past the input, since a
// million-cup listing is not a useful answer.
func NewReport(sim *Simulator, cups string, inputLen int, startTime time.Time) Report {
	r := Report{
		Cups:            cups,
		Size:            sim.Ring().Len(),
		Rounds:          sim.RoundsDone(),
		ProductAfterOne: ProductAfterOne(sim.Ring()),
		WallTimeMs:      time.Since(startTime).Milliseconds(),
	}
	if r.Size == inputLen {
		r.LabelsAfterOne = LabelsAfterOneString(sim.Ring())
	}
	return r
}

// Print writes the report as a header followed by indented JSON.
func (r Report) Print(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = fmt.Fprintf(w, "=== Simulation Results ===\n%s\n", data)
	return err
}
