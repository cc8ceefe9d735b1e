package bestresponse

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Table maps every opponent profile to player A's best response. Entries
// are stored densely by the profile's lexicographic rank. A Table is never
// modified once built.
type Table struct {
	numOpponents  int
	numStrategies int
	best          []int
}

func newTable(n, k, size int) *Table {
	return &Table{
		numOpponents:  n,
		numStrategies: k,
		best:          make([]int, size),
	}
}

// NewTable returns a Table for n opponents and k strategies holding the
// given best responses, indexed by profile rank. It is used to restore
// tables from external storage.
func NewTable(n, k int, entries []int) (*Table, error) {
	t := &Table{
		numOpponents:  n,
		numStrategies: k,
		best:          append([]int(nil), entries...),
	}
	if err := t.validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Entries returns a copy of the best responses indexed by profile rank.
func (t *Table) Entries() []int {
	return append([]int(nil), t.best...)
}

// NumOpponents returns n, the length of each profile.
func (t *Table) NumOpponents() int {
	return t.numOpponents
}

// NumStrategies returns k, the number of strategies per player.
func (t *Table) NumStrategies() int {
	return t.numStrategies
}

// Len returns the number of entries, k^n.
func (t *Table) Len() int {
	return len(t.best)
}

// Lookup returns A's best response to profile.
func (t *Table) Lookup(profile Profile) (int, error) {
	if len(profile) != t.numOpponents {
		return 0, errors.Errorf("profile %v has %d opponents, table has %d",
			profile, len(profile), t.numOpponents)
	}

	rank, err := ProfileRank(profile, t.numStrategies)
	if err != nil {
		return 0, err
	}

	return t.best[rank], nil
}

// At returns the profile with the given rank and A's best response to it.
func (t *Table) At(rank int) (Profile, int, error) {
	if rank < 0 || rank >= len(t.best) {
		return nil, 0, errors.Errorf("rank %d out of range [0, %d)", rank, len(t.best))
	}

	p := NthProfile(rank, t.numStrategies, make(Profile, t.numOpponents))
	return p, t.best[rank], nil
}

// Iter calls cb for each entry in lexicographic profile order. The profile
// is reused between calls.
func (t *Table) Iter(cb func(profile Profile, best int)) {
	p := make(Profile, t.numOpponents)
	for _, best := range t.best {
		cb(p, best)
		advance(p, t.numStrategies)
	}
}

// Histogram returns the number of profiles for which each strategy is the
// best response.
func (t *Table) Histogram() []int {
	result := make([]int, t.numStrategies)
	for _, best := range t.best {
		result[best]++
	}

	return result
}

// Equal reports whether t and other hold identical mappings. Two nil
// tables are equal; a nil table never equals a non-nil one.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}

	if t.numOpponents != other.numOpponents || t.numStrategies != other.numStrategies {
		return false
	}

	if len(t.best) != len(other.best) {
		return false
	}

	for i, best := range t.best {
		if other.best[i] != best {
			return false
		}
	}

	return true
}

// WriteTo writes one "profile -> strategy" line per entry.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	var err error
	t.Iter(func(profile Profile, best int) {
		if err != nil {
			return
		}

		var n int
		n, err = fmt.Fprintf(bw, "%v -> %d\n", profile, best)
		total += int64(n)
	})
	if err != nil {
		return total, err
	}

	return total, bw.Flush()
}

func (t *Table) String() string {
	return fmt.Sprintf("Table{opponents: %d, strategies: %d, entries: %d}",
		t.numOpponents, t.numStrategies, len(t.best))
}
