package bestresponse

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/timpalpant/bestresponse/matrixgame"
)

// Evaluate returns player A's total payoff for playing strategy a against
// profile. Payoffs are pairwise: the total is the sum of A's payoff against
// each opponent's strategy considered on its own.
//
// Terms are added in increasing order of opponent strategy, so every
// permutation of a profile yields a bit-identical total.
func Evaluate(a int, profile Profile, payoffs matrixgame.Matrix) (float64, error) {
	sorted := profile.Clone()
	sort.Ints(sorted)
	return evaluateSorted(a, sorted, payoffs)
}

// evaluateSorted is Evaluate for a profile already sorted by strategy.
func evaluateSorted(a int, sorted Profile, payoffs matrixgame.Matrix) (float64, error) {
	var total float64
	for _, s := range sorted {
		v, ok := payoffs.RowPayoff(a, s)
		if !ok {
			return 0, errors.Wrapf(ErrMissingPayoff, "strategy %d against opponent strategy %d", a, s)
		}
		total += v
	}

	return total, nil
}

// responder picks A's best response to a single profile. It is not safe for
// concurrent use; each worker owns one.
type responder struct {
	payoffs   matrixgame.Matrix
	utilities []float64

	cache     *responseCache
	counts    []int
	keyBuf    []byte
	canonical Profile
}

func newResponder(n, k int, payoffs matrixgame.Matrix, cache *responseCache) *responder {
	return &responder{
		payoffs:   payoffs,
		utilities: make([]float64, k),
		cache:     cache,
		counts:    make([]int, k),
		canonical: make(Profile, n),
	}
}

// bestResponse scores the sorted permutation of profile with or without the
// cache, so both paths see exactly the totals Evaluate reports.
func (r *responder) bestResponse(profile Profile) (int, error) {
	for i, s := range profile {
		if s < 0 || s >= len(r.counts) {
			return 0, errors.Wrapf(ErrMissingPayoff, "opponent %d plays unknown strategy %d", i, s)
		}
	}

	countStrategies(profile, r.counts)
	if r.cache == nil {
		return r.evaluate(canonicalProfile(r.counts, r.canonical))
	}

	r.keyBuf = signature(r.counts, r.keyBuf)
	key := string(r.keyBuf)
	if best, ok := r.cache.get(key); ok {
		return best, nil
	}

	best, err := r.evaluate(canonicalProfile(r.counts, r.canonical))
	if err != nil {
		return 0, err
	}

	r.cache.add(key, best)
	return best, nil
}

func (r *responder) evaluate(sorted Profile) (int, error) {
	for a := range r.utilities {
		payoff, err := evaluateSorted(a, sorted, r.payoffs)
		if err != nil {
			return 0, err
		}
		r.utilities[a] = payoff
	}

	profilesEvaluated.Add(1)
	_, best := matrixgame.ArgMax(r.utilities)
	return best, nil
}
