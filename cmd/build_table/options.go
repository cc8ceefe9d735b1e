package main

import (
	"github.com/timpalpant/bestresponse"
)

// buildOptions maps command line flags to build options. Sequential builds
// run on a single worker so the cache and progress flags still apply.
func buildOptions(parallel, cacheSize, progressEvery int) bestresponse.Options {
	workers := parallel
	if workers <= 0 {
		workers = 1
	}

	return bestresponse.Options{
		Workers:       workers,
		CacheSize:     cacheSize,
		ProgressEvery: progressEvery,
	}
}
