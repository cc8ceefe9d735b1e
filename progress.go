package bestresponse

import (
	"sync/atomic"
	"time"

	"github.com/coder/quartz"
	"github.com/golang/glog"
)

// progress reports how many profiles have been filled across all workers.
type progress struct {
	clock quartz.Clock
	start time.Time
	total int64
	every int64
	done  atomic.Int64

	report func(done, total int64, rate float64)
}

func newProgress(clock quartz.Clock, total, every int) *progress {
	return &progress{
		clock:  clock,
		start:  clock.Now(),
		total:  int64(total),
		every:  int64(every),
		report: logProgress,
	}
}

func logProgress(done, total int64, rate float64) {
	glog.Infof("Filled %d/%d profiles (%.1f profiles/sec)", done, total, rate)
}

func (p *progress) add(n int) {
	if n == 0 {
		return
	}

	done := p.done.Add(int64(n))
	if p.every <= 0 {
		return
	}

	// Report once each time the count crosses a multiple of every.
	if done/p.every != (done-int64(n))/p.every {
		p.report(done, p.total, p.rate(done))
	}
}

func (p *progress) rate(done int64) float64 {
	elapsed := p.clock.Since(p.start).Seconds()
	if elapsed <= 0 {
		return 0
	}

	return float64(done) / elapsed
}

func (p *progress) finish() {
	done := p.done.Load()
	glog.V(1).Infof("Finished %d profiles in %v (%.1f profiles/sec)",
		done, p.clock.Since(p.start), p.rate(done))
}
