package main

import (
	"testing"
)

func TestBuildOptions(t *testing.T) {
	opts := buildOptions(0, 256, 1000)
	if opts.Workers != 1 {
		t.Errorf("expected 1 worker for a sequential build, got %d", opts.Workers)
	}
	if opts.CacheSize != 256 || opts.ProgressEvery != 1000 {
		t.Errorf("cache and progress flags dropped for sequential build: %+v", opts)
	}

	opts = buildOptions(8, 0, 0)
	if opts.Workers != 8 || opts.CacheSize != 0 || opts.ProgressEvery != 0 {
		t.Errorf("unexpected options: %+v", opts)
	}

	if opts := buildOptions(-3, 0, 0); opts.Workers != 1 {
		t.Errorf("expected 1 worker for negative -parallel, got %d", opts.Workers)
	}
}
