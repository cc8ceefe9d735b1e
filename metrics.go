package bestresponse

import (
	"expvar"
)

var (
	profilesEvaluated = expvar.NewInt("bestresponse/profiles_evaluated")
	tablesBuilt       = expvar.NewInt("bestresponse/tables_built")
	cacheHits         = expvar.NewInt("bestresponse/cache_hits")
	cacheMisses       = expvar.NewInt("bestresponse/cache_misses")
	cacheHitRate      = expvar.NewFloat("bestresponse/cache_hit_rate")
)

func updateCacheHitRate() {
	hits := cacheHits.Value()
	total := hits + cacheMisses.Value()
	if total > 0 {
		cacheHitRate.Set(float64(hits) / float64(total))
	}
}
