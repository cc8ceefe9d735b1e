// Build the best-response table for a game defined in an HCL file.
package main

import (
	"context"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/timpalpant/bestresponse"
	"github.com/timpalpant/bestresponse/gamefile"
	"github.com/timpalpant/bestresponse/tablestore"
)

func main() {
	gameFile := flag.String("game", "", "HCL file with the game definition")
	gameName := flag.String("name", "", "Game to use if the file defines several")
	opponents := flag.Int("opponents", 0, "Number of opponents (overrides the game file)")
	parallel := flag.Int("parallel", 0, "Number of workers (0 builds sequentially on one worker)")
	cacheSize := flag.Int("cache_size", 0, "Size of the response cache (0 disables it)")
	progressEvery := flag.Int("progress_every", 1000000, "Log progress every N profiles")
	verify := flag.Bool("verify", false, "Re-check every entry of the table after building")
	printTable := flag.Bool("print", true, "Print the table to stdout")
	output := flag.String("output", "", "File to save the compressed table to")
	sqlitePath := flag.String("sqlite", "", "SQLite database to export the table to")
	flag.Parse()

	go http.ListenAndServe("localhost:4123", nil)

	if *gameFile == "" {
		glog.Fatal("-game is required")
	}

	f, err := gamefile.Load(*gameFile)
	if err != nil {
		glog.Fatal(err)
	}

	game, err := f.Game(*gameName)
	if err != nil {
		glog.Fatal(err)
	}

	n := game.NumOpponents()
	if *opponents != 0 {
		n = *opponents
	}
	k := game.NumStrategies()

	glog.Infof("Building best responses to %d opponents in %q (%d strategies)", n, game.Name, k)
	start := time.Now()
	table, err := bestresponse.BuildParallel(context.Background(), n, k, game.Matrix(),
		buildOptions(*parallel, *cacheSize, *progressEvery))
	if err != nil {
		glog.Fatal(err)
	}
	glog.Infof("Built %v (took: %v)", table, time.Since(start))

	for s, count := range table.Histogram() {
		glog.Infof("Strategy %s is the best response to %d profiles", game.StrategyName(s), count)
	}

	if *verify {
		if err := bestresponse.Verify(table, game.Matrix()); err != nil {
			glog.Fatal(err)
		}
		glog.Info("Verified all entries")
	}

	if *printTable {
		if _, err := table.WriteTo(os.Stdout); err != nil {
			glog.Fatal(err)
		}
	}

	if *output != "" {
		if err := table.SaveFile(*output); err != nil {
			glog.Fatal(err)
		}
		glog.Infof("Saved table to %v", *output)
	}

	if *sqlitePath != "" {
		store, err := tablestore.Open(*sqlitePath)
		if err != nil {
			glog.Fatal(err)
		}
		defer store.Close()

		if err := store.Save(context.Background(), game.Name, table); err != nil {
			glog.Fatal(err)
		}
		glog.Infof("Exported table %q to %v", game.Name, *sqlitePath)
	}
}
