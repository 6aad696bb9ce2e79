package rotator

import (
	"math/rand"

	"github.com/pthm-cable/dreamscape/fractal"
)

// State is the scheduled-switch state.
type State uint8

const (
	// Armed waits for the clock to pass the threshold with a value ready.
	Armed State = iota
	// Switching is taking the pending value out of the mailbox.
	Switching
)

func (s State) String() string {
	switch s {
	case Armed:
		return "armed"
	case Switching:
		return "switching"
	}
	return "unknown"
}

// ShouldSwitch reports whether a scheduled switch is due.
func ShouldSwitch(elapsed, threshold float64, ready bool) bool {
	return elapsed > threshold && ready
}

// NextThreshold draws a whole-unit threshold uniformly from [min, max).
func NextThreshold(rng *rand.Rand, min, max int) float64 {
	return float64(min + rng.Intn(max-min))
}

// Schedule decides when the render loop adopts a pending parameter set.
// It is owned by the render loop.
type Schedule struct {
	state     State
	threshold float64
	min, max  int
	rng       *rand.Rand
}

// NewSchedule creates an armed schedule with a freshly drawn threshold.
func NewSchedule(min, max int, rng *rand.Rand) *Schedule {
	return &Schedule{
		state:     Armed,
		threshold: NextThreshold(rng, min, max),
		min:       min,
		max:       max,
		rng:       rng,
	}
}

// Poll checks the schedule for clock value elapsed. When a switch is due it
// takes the pending params, draws the next threshold and returns them.
// The mailbox lock is only taken when the ready flag is already set.
func (s *Schedule) Poll(elapsed float64, mb *Mailbox[fractal.Params]) (fractal.Params, bool) {
	if s.state != Armed || !ShouldSwitch(elapsed, s.threshold, mb.Ready()) {
		return fractal.Params{}, false
	}

	s.state = Switching
	p, ok := mb.Take()
	s.state = Armed
	if !ok {
		return fractal.Params{}, false
	}

	s.threshold = NextThreshold(s.rng, s.min, s.max)
	return p, true
}

// State returns the current state.
func (s *Schedule) State() State {
	return s.state
}

// Threshold returns the clock value the next switch waits for.
func (s *Schedule) Threshold() float64 {
	return s.threshold
}
