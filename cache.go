package bestresponse

import (
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// responseCache memoizes best responses by strategy-count signature.
// Evaluate adds pairwise payoffs in strategy order, so every permutation of
// a profile has bit-identical totals and the same best response. Safe for
// concurrent use.
type responseCache struct {
	cache *lru.Cache
}

func newResponseCache(size int) (*responseCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrapf(err, "creating response cache of size %d", size)
	}

	return &responseCache{cache: cache}, nil
}

func (c *responseCache) get(key string) (int, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		cacheMisses.Add(1)
		updateCacheHitRate()
		return 0, false
	}

	cacheHits.Add(1)
	updateCacheHitRate()
	return v.(int), true
}

func (c *responseCache) add(key string, best int) {
	c.cache.Add(key, best)
}

func (c *responseCache) len() int {
	return c.cache.Len()
}

// countStrategies fills counts[s] with the number of opponents playing s.
func countStrategies(profile Profile, counts []int) []int {
	for i := range counts {
		counts[i] = 0
	}
	for _, s := range profile {
		counts[s]++
	}

	return counts
}

func signature(counts []int, buf []byte) []byte {
	buf = buf[:0]
	for _, c := range counts {
		buf = binary.AppendUvarint(buf, uint64(c))
	}

	return buf
}

// canonicalProfile writes the sorted profile with the given counts to dst.
func canonicalProfile(counts []int, dst Profile) Profile {
	i := 0
	for s, c := range counts {
		for ; c > 0; c-- {
			dst[i] = s
			i++
		}
	}

	return dst
}
