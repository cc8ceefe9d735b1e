package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/golang/glog"

	"github.com/timpalpant/bestresponse"
)

func main() {
	n := flag.Int("n", 10, "Number of opponents")
	k := flag.Int("k", 4, "Number of strategies")
	flag.Parse()
	go http.ListenAndServe("localhost:4123", nil)

	total, err := bestresponse.NumProfiles(*n, *k)
	if err != nil {
		glog.Fatal(err)
	}
	glog.Infof("Enumerating %d profiles", total)

	count := 0
	start := time.Now()
	err = bestresponse.EnumerateProfiles(*n, *k, func(p bestresponse.Profile) {
		count++
		if count%10000000 == 0 {
			pps := float64(count) / time.Since(start).Seconds()
			glog.Infof("%d profiles (%.1f profiles/sec)", count, pps)
		}
	})
	if err != nil {
		glog.Fatal(err)
	}

	glog.Infof("%d profiles in %v", count, time.Since(start))
}
