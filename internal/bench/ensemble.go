package bench

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/metrics"
)

// Result is the outcome of one seeded run.
type Result struct {
	Seed    int64
	Input   algorithms.Input
	Steps   int
	Metrics map[string]float64
}

// Ensemble generates numRuns random inputs for one algorithm, seeded
// seedStart, seedStart+1, ..., and runs them concurrently.
type Ensemble struct {
	reg       *algorithms.Registry
	algorithm string
	numRuns   int
	seedStart int64
}

func NewEnsemble(reg *algorithms.Registry, algorithm string, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{reg: reg, algorithm: algorithm, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]Result, error) {
	info, err := e.reg.Info(e.algorithm)
	if err != nil {
		return nil, err
	}

	results := make([]Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			seed := e.seedStart + int64(idx)
			in := input.Random(rand.New(rand.NewSource(seed)), info)
			run, err := e.reg.Generate(info.ID, in)
			if err != nil {
				errs[idx] = err
				return
			}

			results[idx] = Result{
				Seed:    seed,
				Input:   in,
				Steps:   len(run.Steps),
				Metrics: metrics.Collect(run.Steps),
			}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Summary aggregates one metric over an ensemble.
type Summary struct {
	Name string
	Mean float64
	Min  float64
	Max  float64
}

// Summarize folds results into one Summary per metric, sorted by name. The
// step count is reported as "steps".
func Summarize(results []Result) []Summary {
	if len(results) == 0 {
		return nil
	}

	acc := make(map[string]*Summary)
	add := func(name string, v float64) {
		s, ok := acc[name]
		if !ok {
			s = &Summary{Name: name, Min: math.Inf(1), Max: math.Inf(-1)}
			acc[name] = s
		}
		s.Mean += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}

	for _, r := range results {
		add("steps", float64(r.Steps))
		for name, v := range r.Metrics {
			add(name, v)
		}
	}

	out := make([]Summary, 0, len(acc))
	for _, s := range acc {
		s.Mean /= float64(len(results))
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
