// sim/simulator.go
package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cupsim/cupsim/sim/trace"
)

// heldCount is the number of cups picked up each round.
const heldCount = 3

// Simulator owns the ring and the current cup, and applies rounds of the
// crab's move to them.
type Simulator struct {
	ring    *Ring
	current Label
	// Rounds is the configured number of rounds for Run.
	Rounds int64
	// done counts rounds applied so far, whether by Run or Step.
	done          int64
	progressEvery int64
	// moves is nil unless tracing was enabled
	moves *trace.SimulationTrace
}

// NewSimulator validates cfg against order, builds the ring, grows it to the
// configured size and places the current cup at order[0]. All errors surface
// here, before any round is applied.
func NewSimulator(cfg SimConfig, order []Label) (*Simulator, error) {
	ring, err := NewRing(order)
	if err != nil {
		return nil, err
	}
	size, err := cfg.resolveSize(len(order))
	if err != nil {
		return nil, err
	}
	if err := Extend(ring, order, size); err != nil {
		return nil, err
	}
	return &Simulator{
		ring:          ring,
		current:       order[0],
		Rounds:        cfg.Rounds,
		progressEvery: cfg.ProgressEvery,
	}, nil
}

// Ring returns the ring being simulated. Callers must not mutate it while a
// run is in progress.
func (sim *Simulator) Ring() *Ring { return sim.ring }

// Current returns the cup the next round starts from.
func (sim *Simulator) Current() Label { return sim.current }

// RoundsDone returns how many rounds have been applied.
func (sim *Simulator) RoundsDone() int64 { return sim.done }

// EnableTrace starts recording each subsequent round. It returns nil, and
// records nothing, when cfg's level is none.
func (sim *Simulator) EnableTrace(cfg trace.TraceConfig) *trace.SimulationTrace {
	if !cfg.Enabled() {
		sim.moves = nil
		return nil
	}
	sim.moves = trace.NewSimulationTrace(cfg)
	return sim.moves
}

// Step applies one round: pick up the three cups after current, choose the
// destination, put them back after it and advance current.
func (sim *Simulator) Step() {
	next := sim.ring.next
	n := Label(len(next) - 1)
	c := sim.current

	h0 := next[c]
	h1 := next[h0]
	h2 := next[h1]

	next[c] = next[h2]

	dest := c
	skipped := 0
	for {
		dest--
		if dest == 0 {
			dest = n
		}
		if dest != h0 && dest != h1 && dest != h2 {
			break
		}
		skipped++
	}

	after := next[dest]
	next[dest] = h0
	next[h2] = after

	sim.current = next[c]
	sim.done++

	if sim.moves != nil {
		sim.moves.RecordMove(trace.MoveRecord{
			Round:       sim.done,
			Current:     int(c),
			Held:        [heldCount]int{int(h0), int(h1), int(h2)},
			Destination: int(dest),
			Skipped:     skipped,
		})
	}
}

// Run applies the remaining configured rounds. Cancellation is checked
// between rounds only, so a cancelled run leaves the ring at a round boundary.
func (sim *Simulator) Run(ctx context.Context) error {
	logrus.Infof("[round %09d] Starting %d rounds on %d cups", sim.done, max(sim.Rounds-sim.done, 0), sim.ring.Len())
	stop := ctx.Done()
	untilProgress := sim.progressEvery
	for sim.done < sim.Rounds {
		if stop != nil {
			select {
			case <-stop:
				logrus.Warnf("[round %09d] Simulation cancelled", sim.done)
				return fmt.Errorf("simulation stopped after %d of %d rounds: %w", sim.done, sim.Rounds, ctx.Err())
			default:
			}
		}
		sim.Step()
		if untilProgress > 0 {
			untilProgress--
			if untilProgress == 0 {
				logrus.Debugf("[round %09d] current=%d", sim.done, sim.current)
				untilProgress = sim.progressEvery
			}
		}
	}
	logrus.Infof("[round %09d] Simulation ended", sim.done)
	return nil
}
