package trace

import "fmt"

// Sequence is a frozen, immutable pass sequence plus its run metadata.
// The UI never mutates it; indices handed out by Step are stable.
type Sequence struct {
	steps []Step
	info  RunInfo
}

// Len returns the number of recorded steps.
func (s *Sequence) Len() int {
	return len(s.steps)
}

// Step returns the step at index i. i must be in [0, Len()-1].
func (s *Sequence) Step(i int) Step {
	return s.steps[i]
}

// Steps returns a copy of the full step slice.
func (s *Sequence) Steps() []Step {
	dup := make([]Step, len(s.steps))
	copy(dup, s.steps)
	return dup
}

// Info returns the run-level metadata.
func (s *Sequence) Info() RunInfo {
	return s.info
}

// Collector accumulates steps while a run is being recorded. It is
// append-only; Freeze hands the result to the UI and no further appends
// are observed by the returned Sequence.
type Collector struct {
	steps []Step
	info  RunInfo
}

// NewCollector creates a collector for a run with the given metadata.
func NewCollector(info RunInfo) *Collector {
	return &Collector{info: info}
}

// Add appends a step, assigning its stable index.
func (c *Collector) Add(step Step) {
	step.Index = len(c.steps)
	c.steps = append(c.steps, step)
}

// Freeze returns the immutable sequence. An empty run cannot be frozen:
// the dashboard requires at least one step.
func (c *Collector) Freeze() (*Sequence, error) {
	if len(c.steps) == 0 {
		return nil, fmt.Errorf("freeze: run contains no steps")
	}
	steps := make([]Step, len(c.steps))
	copy(steps, c.steps)
	return &Sequence{steps: steps, info: c.info}, nil
}
