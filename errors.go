package bestresponse

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidDomainSize is returned when the number of opponents or
	// strategies is not positive, or the table would be too large to index.
	ErrInvalidDomainSize = errors.New("invalid domain size")
	// ErrMissingPayoff is returned when the payoff matrix has no numeric
	// payoff for a (strategy, opponent strategy) pair that is needed.
	ErrMissingPayoff = errors.New("missing payoff entry")
)
