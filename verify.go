package bestresponse

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/bestresponse/matrixgame"
)

// Verify re-evaluates every profile in t against payoffs and checks that
// the recorded strategy achieves the maximal payoff and that no lower
// strategy index achieves it too.
func Verify(t *Table, payoffs matrixgame.Matrix) error {
	utilities := make([]float64, t.numStrategies)
	var verifyErr error
	t.Iter(func(profile Profile, best int) {
		if verifyErr != nil {
			return
		}

		if best < 0 || best >= t.numStrategies {
			verifyErr = errors.Errorf("profile %v: strategy %d out of range [0, %d)",
				profile, best, t.numStrategies)
			return
		}

		for a := range utilities {
			payoff, err := Evaluate(a, profile, payoffs)
			if err != nil {
				verifyErr = errors.Wrapf(err, "profile %v", profile)
				return
			}
			utilities[a] = payoff
		}

		for a, payoff := range utilities {
			if payoff > utilities[best] {
				verifyErr = errors.Errorf("profile %v: strategy %d pays %v, more than recorded strategy %d (%v)",
					profile, a, payoff, best, utilities[best])
				return
			}
			if a < best && payoff == utilities[best] {
				verifyErr = errors.Errorf("profile %v: strategy %d ties recorded strategy %d but has a lower index",
					profile, a, best)
				return
			}
		}
	})

	return verifyErr
}
