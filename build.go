package bestresponse

import (
	"context"
	"runtime"

	"github.com/coder/quartz"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/timpalpant/bestresponse/matrixgame"
)

// How many profiles a worker fills between checks for cancellation
// and progress reports.
const batchSize = 4096

// Build computes A's best response to each of the k^n profiles of n
// opponents with k strategies each. Ties go to the lowest strategy index.
// No table is returned if any required payoff is missing.
func Build(n, k int, payoffs matrixgame.Matrix) (*Table, error) {
	size, err := NumProfiles(n, k)
	if err != nil {
		return nil, err
	}

	t := newTable(n, k, size)
	r := newResponder(n, k, payoffs, nil)
	rank := 0
	err = walkProfiles(n, k, func(profile Profile) error {
		best, err := r.bestResponse(profile)
		if err != nil {
			return errors.Wrapf(err, "evaluating profile %v", profile)
		}

		t.best[rank] = best
		rank++
		return nil
	})
	if err != nil {
		return nil, err
	}

	tablesBuilt.Add(1)
	return t, nil
}

// Options configures BuildParallel.
type Options struct {
	// Number of workers. Defaults to GOMAXPROCS.
	Workers int
	// If positive, best responses are memoized by strategy counts in an
	// LRU cache of this many entries shared by all workers.
	CacheSize int
	// Log progress every this many profiles. Zero disables progress logging.
	ProgressEvery int
	// Clock used to compute progress rates. Defaults to the real clock.
	Clock quartz.Clock
}

// BuildParallel computes the same table as Build, partitioning the profile
// space into contiguous ranges filled by independent workers. The first
// error, or cancellation of ctx, aborts the build.
func BuildParallel(ctx context.Context, n, k int, payoffs matrixgame.Matrix, opts Options) (*Table, error) {
	size, err := NumProfiles(n, k)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > size {
		workers = size
	}

	var cache *responseCache
	if opts.CacheSize > 0 {
		if cache, err = newResponseCache(opts.CacheSize); err != nil {
			return nil, err
		}
	}

	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	prog := newProgress(clock, size, opts.ProgressEvery)

	glog.V(1).Infof("Building table of %d profiles (n = %d, k = %d) with %d workers",
		size, n, k, workers)
	t := newTable(n, k, size)
	g, ctx := errgroup.WithContext(ctx)
	chunk := size / workers
	remainder := size % workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + chunk
		if w < remainder {
			hi++
		}

		r := newResponder(n, k, payoffs, cache)
		start, end := lo, hi
		g.Go(func() error {
			return t.fill(ctx, start, end, r, prog)
		})
		lo = hi
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cache != nil {
		glog.V(1).Infof("Response cache holds %d signatures", cache.len())
	}
	prog.finish()
	tablesBuilt.Add(1)
	return t, nil
}

// fill computes entries [lo, hi) of t. Ranges of concurrent calls must
// not overlap.
func (t *Table) fill(ctx context.Context, lo, hi int, r *responder, prog *progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	profile := NthProfile(lo, t.numStrategies, make(Profile, t.numOpponents))
	reported := lo
	for rank := lo; rank < hi; rank++ {
		if rank-reported == batchSize {
			if err := ctx.Err(); err != nil {
				return err
			}
			prog.add(batchSize)
			reported = rank
		}

		best, err := r.bestResponse(profile)
		if err != nil {
			return errors.Wrapf(err, "evaluating profile %v", profile)
		}

		t.best[rank] = best
		advance(profile, t.numStrategies)
	}

	prog.add(hi - reported)
	return nil
}
