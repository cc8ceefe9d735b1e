package bestresponse

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the joint strategy choice of player A's opponents: one
// strategy index per opponent.
type Profile []int

func (p Profile) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, s := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(s))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Clone returns a copy of p that does not share storage with it.
func (p Profile) Clone() Profile {
	return append(Profile(nil), p...)
}

// ParseProfile parses a profile written as a comma separated list of
// strategy indices, with or without surrounding parentheses.
func ParseProfile(s string) (Profile, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	if strings.TrimSpace(s) == "" {
		return nil, errors.Errorf("empty profile")
	}

	fields := strings.Split(s, ",")
	result := make(Profile, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid strategy at position %d", i)
		}
		result[i] = v
	}

	return result, nil
}

// NumProfiles returns k^n, the number of distinct opponent profiles.
func NumProfiles(n, k int) (int, error) {
	if n < 1 || k < 1 {
		return 0, errors.Wrapf(ErrInvalidDomainSize, "n = %d, k = %d", n, k)
	}

	result := 1
	for i := 0; i < n; i++ {
		if result > math.MaxInt/k {
			return 0, errors.Wrapf(ErrInvalidDomainSize, "%d^%d profiles overflows int", k, n)
		}
		result *= k
	}

	return result, nil
}

// EnumerateProfiles calls cb once for each of the k^n opponent profiles in
// lexicographic order. The profile passed to cb is reused between calls;
// cb must Clone it to retain it.
func EnumerateProfiles(n, k int, cb func(p Profile)) error {
	return walkProfiles(n, k, func(p Profile) error {
		cb(p)
		return nil
	})
}

// walkProfiles is EnumerateProfiles with early exit: the first error
// returned by cb stops the walk and is returned.
func walkProfiles(n, k int, cb func(p Profile) error) error {
	if n < 1 || k < 1 {
		return errors.Wrapf(ErrInvalidDomainSize, "n = %d, k = %d", n, k)
	}

	p := make(Profile, n)
	for {
		if err := cb(p); err != nil {
			return err
		}
		if !advance(p, k) {
			return nil
		}
	}
}

// advance increments p as an odometer of base-k digits, least significant
// digit last. It returns false once every digit has rolled over.
func advance(p Profile, k int) bool {
	for i := len(p) - 1; i >= 0; i-- {
		p[i]++
		if p[i] < k {
			return true
		}
		p[i] = 0
	}

	return false
}

// ProfileRank returns the position of p in the lexicographic enumeration
// of all profiles with k strategies per opponent.
func ProfileRank(p Profile, k int) (int, error) {
	rank := 0
	for i, s := range p {
		if s < 0 || s >= k {
			return 0, errors.Errorf("strategy %d of opponent %d out of range [0, %d)", s, i, k)
		}
		rank = rank*k + s
	}

	return rank, nil
}

// NthProfile decodes rank into dst, the inverse of ProfileRank.
// len(dst) determines the number of opponents.
func NthProfile(rank, k int, dst Profile) Profile {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = rank % k
		rank /= k
	}

	return dst
}
