package scheduler

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"meeting-scheduler/calendar"
	"meeting-scheduler/logger"
	"meeting-scheduler/metrics"
	"meeting-scheduler/models"
)

// Optimizer runs one pass per seed and keeps the pass with the fewest
// unfulfilled requests.
type Optimizer struct {
	env *env
	log logger.Logger
}

// Result is the outcome of an optimisation run.
type Result struct {
	RunID string
	// Best is the selected pass and BestIndex its seed index.
	Best      *models.PassResult
	BestIndex int
	// Unfulfilled holds each seed's unfulfilled count, by seed index.
	Unfulfilled []int
	Mean        float64
	StdDev      float64
}

// NewOptimizer validates options and calendar and prepares the shared,
// read-only input of every pass. A nil logger disables logging.
func NewOptimizer(input models.Input, cal calendar.Calendar, opts Options, log logger.Logger) (*Optimizer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Optimizer{env: newEnv(input, cal, opts), log: log}, nil
}

// Run executes every seed, concurrently up to Options.Workers, and returns the
// best pass. Cancelling ctx aborts the run with an error and no result.
func (o *Optimizer) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	opts := o.env.opts
	runID := uuid.NewString()

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	o.log.Infof("run %s: %d seeds from %d on %d workers, %d suppliers, %d reps",
		runID, opts.Seeds, opts.BaseSeed, workers, len(o.env.input.Suppliers), len(o.env.input.Reps))

	passes := make([]*models.PassResult, opts.Seeds)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range opts.Seeds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := o.env.run(opts.BaseSeed+int64(i), o.log)
			passes[i] = res
			o.log.Debugw("pass complete", map[string]any{
				"run_id":      runID,
				"seed":        res.Seed,
				"meetings":    len(res.Meetings),
				"unfulfilled": res.Unfulfilled,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	best := SelectBest(passes)
	counts := make([]int, len(passes))
	values := make([]float64, len(passes))
	for i, p := range passes {
		counts[i] = p.Unfulfilled
		values[i] = float64(p.Unfulfilled)
		metrics.SeedUnfulfilled.Observe(values[i])
	}
	mean, std := stat.MeanStdDev(values, nil)
	if math.IsNaN(std) {
		std = 0
	}

	metrics.RunDurationSeconds.Observe(time.Since(start).Seconds())
	o.log.Infof("run %s: selected seed %d with %d unfulfilled (mean %.2f, stddev %.2f) in %s",
		runID, passes[best].Seed, passes[best].Unfulfilled, mean, std, time.Since(start))

	return &Result{
		RunID:       runID,
		Best:        passes[best],
		BestIndex:   best,
		Unfulfilled: counts,
		Mean:        mean,
		StdDev:      std,
	}, nil
}

// SelectBest returns the index of the pass with the fewest unfulfilled
// requests; the lowest index wins ties. It returns -1 for an empty slice.
func SelectBest(passes []*models.PassResult) int {
	best := -1
	for i, p := range passes {
		if best < 0 || p.Unfulfilled < passes[best].Unfulfilled {
			best = i
		}
	}
	return best
}
