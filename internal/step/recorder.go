package step

import "fmt"

// Recorder accumulates steps for a single generation pass.
type Recorder struct {
	steps Sequence
}

func NewRecorder(capacity int) *Recorder {
	return &Recorder{steps: make(Sequence, 0, capacity)}
}

// Record appends a step holding a deep copy of snap. Callers may keep
// mutating the slices they passed in.
func (r *Recorder) Record(action Action, snap Snapshot, format string, args ...any) {
	r.steps = append(r.steps, Step{
		ID:          len(r.steps),
		Action:      action,
		Description: fmt.Sprintf(format, args...),
		Data:        snap.clone(),
	})
}

func (r *Recorder) Len() int { return len(r.steps) }

// Steps returns the recorded sequence. The recorder must not be used after.
func (r *Recorder) Steps() Sequence {
	return r.steps
}

// Clone returns a deep copy of the step.
func (s Step) Clone() Step {
	c := s
	if s.Data != nil {
		c.Data = s.Data.clone()
	}
	return c
}
