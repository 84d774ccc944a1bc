// Command gridpath searches ASCII grid maps from the terminal and serves the
// same searches over HTTP.
//
// Usage:
//
//	gridpath run [-map FILE | -generate maze|wilson|random [-seed N] [-density P]]
//	             [-algo astar|dijkstra|bfs] [-heuristic NAME] [-conn 4|8] [-trace]
//	gridpath serve
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/config"
)

var appLogger *config.Logger

func usage() {
	fmt.Fprintln(os.Stderr, "usage: gridpath <run|serve> [flags]")
}

func main() {
	var err error
	appLogger, err = config.NewLogger("APP", config.ColorGreen, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading config: %v", err))
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		err = runCmd(os.Args[2:], cfg, os.Stdout)
	case "serve":
		err = serveCmd(cfg)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}
