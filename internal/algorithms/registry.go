package algorithms

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/algoviz/internal/step"
)

var (
	ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")
	ErrNotImplemented   = errors.New("algorithms: visualizer not implemented yet")
)

// Input is the validated array (and target, for searches) handed to a
// generator.
type Input struct {
	Values []int
	Target int
}

// Generator runs an algorithm on in and returns its full step sequence.
type Generator func(in Input) step.Sequence

// Run is one generated sequence plus the parameters that produced it.
type Run struct {
	ID          string        `json:"run_id"`
	Algorithm   string        `json:"algorithm"`
	Kind        step.Kind     `json:"kind"`
	Input       []int         `json:"input"`
	Target      *int          `json:"target,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
	Steps       step.Sequence `json:"steps"`
}

type Registry struct {
	infos      map[string]Info
	order      []string
	generators map[string]Generator
}

func NewRegistry() *Registry {
	r := &Registry{
		infos:      make(map[string]Info),
		generators: make(map[string]Generator),
	}

	for _, info := range Catalog {
		r.infos[info.ID] = info
		r.order = append(r.order, info.ID)
	}

	r.generators[IDBubbleSort] = func(in Input) step.Sequence { return BubbleSort(in.Values) }
	r.generators[IDMergeSort] = func(in Input) step.Sequence { return MergeSort(in.Values) }
	r.generators[IDBinarySearch] = func(in Input) step.Sequence { return BinarySearch(in.Values, in.Target) }

	return r
}

func (r *Registry) Info(id string) (Info, error) {
	info, ok := r.infos[id]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, id)
	}
	return info, nil
}

// List returns catalog entries in display order, including ones that are
// not implemented.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.infos[id])
	}
	return out
}

// Implemented returns the ids that have a generator.
func (r *Registry) Implemented() []string {
	ids := make([]string, 0, len(r.generators))
	for _, id := range r.order {
		if _, ok := r.generators[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *Registry) GetGenerator(id string) (Generator, error) {
	if _, err := r.Info(id); err != nil {
		return nil, err
	}
	gen, ok := r.generators[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, id)
	}
	return gen, nil
}

// Generate runs the named algorithm and stamps the result with a fresh run id.
func (r *Registry) Generate(id string, in Input) (*Run, error) {
	gen, err := r.GetGenerator(id)
	if err != nil {
		return nil, err
	}
	info := r.infos[id]

	steps := gen(in)
	run := &Run{
		ID:          uuid.NewString(),
		Algorithm:   id,
		Kind:        steps[0].Data.Kind(),
		Input:       append([]int(nil), in.Values...),
		GeneratedAt: time.Now().UTC(),
		Steps:       steps,
	}
	if info.Limits.NeedsTarget {
		run.Target = step.Int(in.Target)
	}
	return run, nil
}
