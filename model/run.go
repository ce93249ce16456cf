package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// SimulationRun owns the current grid, a copy of generation 0 and the
// generation counter. It is not safe for concurrent use.
type SimulationRun struct {
	current       *Grid
	original      *Grid
	generation    int
	maxIterations int
	stopped       bool

	rule     rules.Rule
	parallel bool
	workers  int
}

// RunOption configures a SimulationRun
type RunOption func(*SimulationRun)

// WithRule replaces the canonical Conway rule
func WithRule(rule rules.Rule) RunOption {
	return func(r *SimulationRun) {
		if rule != nil {
			r.rule = rule
		}
	}
}

// WithParallel evaluates each generation with NextGenerationParallel
func WithParallel(workers int) RunOption {
	return func(r *SimulationRun) {
		r.parallel = true
		r.workers = workers
	}
}

// NewSimulationRun starts a run at generation 0 from a copy of initial
func NewSimulationRun(initial *Grid, maxIterations int, opts ...RunOption) (*SimulationRun, error) {
	if initial == nil {
		return nil, errors.Wrap(ErrInvalidDimension, "[NewSimulationRun] nil grid")
	}
	if maxIterations < 0 {
		return nil, errors.Wrapf(ErrInvalidIterations, "[NewSimulationRun] maxIterations=%d", maxIterations)
	}

	r := &SimulationRun{
		current:       initial.Clone(),
		original:      initial.Clone(),
		maxIterations: maxIterations,
		rule:          rules.Conway,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Finished reports whether Advance would refuse to step: the iteration limit
// is reached or no cell is alive.
func (r *SimulationRun) Finished() bool {
	return r.generation >= r.maxIterations || r.current.CountLivingCells() == 0
}

// Advance replaces the current grid with its next generation. It returns
// false, leaving the run untouched, when the run is finished.
func (r *SimulationRun) Advance() bool {
	if r.Finished() {
		return false
	}
	if r.parallel {
		r.current = r.current.NextGenerationParallel(r.rule, r.workers)
	} else {
		r.current = r.current.NextGeneration(r.rule)
	}
	r.generation++
	return true
}

// Reset restores generation 0 and clears the stop flag
func (r *SimulationRun) Reset() {
	r.current = r.original.Clone()
	r.generation = 0
	r.stopped = false
}

// Stop asks a driving loop to halt between steps. Applied steps are kept.
func (r *SimulationRun) Stop() { r.stopped = true }

// Resume clears a pending stop request without touching the grid
func (r *SimulationRun) Resume() { r.stopped = false }

// Stopped reports whether a stop request is pending
func (r *SimulationRun) Stopped() bool { return r.stopped }

// Generation returns the number of steps applied since generation 0
func (r *SimulationRun) Generation() int { return r.generation }

// MaxIterations returns the configured iteration limit
func (r *SimulationRun) MaxIterations() int { return r.maxIterations }

// Current returns a copy of the current grid
func (r *SimulationRun) Current() *Grid { return r.current.Clone() }

// Original returns a copy of the generation 0 grid
func (r *SimulationRun) Original() *Grid { return r.original.Clone() }

// Population returns the number of alive cells in the current grid
func (r *SimulationRun) Population() int { return r.current.CountLivingCells() }
