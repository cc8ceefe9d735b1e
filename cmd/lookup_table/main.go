// Look up the best response to an opponent profile in a saved table.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/golang/glog"

	"github.com/timpalpant/bestresponse"
	"github.com/timpalpant/bestresponse/tablestore"
)

func main() {
	tableFile := flag.String("table", "", "Compressed table file written by build_table")
	sqlitePath := flag.String("sqlite", "", "SQLite database written by build_table")
	name := flag.String("name", "", "Name of the table in the SQLite database")
	profileStr := flag.String("profile", "", "Opponent profile, e.g. \"0,1,1\"")
	flag.Parse()

	profile, err := bestresponse.ParseProfile(*profileStr)
	if err != nil {
		glog.Fatal(err)
	}

	var best int
	switch {
	case *tableFile != "":
		table, err := bestresponse.LoadFile(*tableFile)
		if err != nil {
			glog.Fatal(err)
		}
		glog.V(1).Infof("Loaded %v", table)

		if best, err = table.Lookup(profile); err != nil {
			glog.Fatal(err)
		}
	case *sqlitePath != "":
		store, err := tablestore.Open(*sqlitePath)
		if err != nil {
			glog.Fatal(err)
		}
		defer store.Close()

		if best, err = store.Lookup(context.Background(), *name, profile); err != nil {
			glog.Fatal(err)
		}
	default:
		glog.Fatal("one of -table or -sqlite is required")
	}

	fmt.Printf("%v -> %d\n", profile, best)
}
