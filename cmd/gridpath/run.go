package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// runCmd parses flags, loads or builds a grid, searches it and prints the
// result to out.
func runCmd(args []string, cfg config.Config, out io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(out)
	mapFile := fs.String("map", "", "ASCII map file (default: empty grid, end at the far corner)")
	algoName := fs.String("algo", "astar", "search algorithm: "+strings.Join(algorithms.Names(), ", "))
	hName := fs.String("heuristic", "euclidean", "A* heuristic: "+strings.Join(heuristic.Names(), ", "))
	conn := fs.Int("conn", 4, "connectivity: 4 or 8")
	trace := fs.Bool("trace", false, "print the grid after every expansion")
	generate := fs.String("generate", "", "generate the map instead of -map: maze, wilson or random")
	seed := fs.Int64("seed", 1, "seed for -generate")
	density := fs.Float64("density", 0.25, "wall probability for -generate random")
	if err := fs.Parse(args); err != nil {
		return err
	}

	alg, err := algorithms.Parse(*algoName)
	if err != nil {
		return err
	}
	h, err := heuristic.ByName(*hName)
	if err != nil {
		return err
	}
	var c gridgraph.Connectivity
	switch *conn {
	case 4:
		c = gridgraph.Conn4
	case 8:
		c = gridgraph.Conn8
	default:
		return fmt.Errorf("-conn must be 4 or 8, got %d", *conn)
	}

	var g *gridgraph.Grid
	switch {
	case *generate != "" && *mapFile != "":
		return errors.New("-map and -generate are mutually exclusive")
	case *generate != "":
		g, err = generateGrid(*generate, *seed, *density, cfg, c)
	default:
		g, err = loadGrid(*mapFile, cfg, c)
	}
	if err != nil {
		return err
	}
	printRegions(out, g)

	opts := []algorithms.Option{algorithms.WithHeuristic(h)}
	if *trace {
		frame := 0
		opts = append(opts, algorithms.WithRedraw(func() {
			frame++
			fmt.Fprintf(out, "-- frame %d\n%s", frame, g)
		}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := algorithms.Run(ctx, g, alg, opts...)
	switch {
	case err == nil:
	case errors.Is(err, astar.ErrNoPath):
		fmt.Fprint(out, g)
		fmt.Fprintf(out, "%s: no path (expanded %d)\n", alg, res.Expanded)
		return nil
	default:
		return err
	}
	if !res.Ran {
		fmt.Fprint(out, g)
		fmt.Fprintln(out, "no end cell; nothing to search")
		return nil
	}

	fmt.Fprint(out, g)
	fmt.Fprintf(out, "%s: steps=%d cost=%.3f expanded=%d\n", alg, res.Steps(), res.Cost, res.Expanded)
	fmt.Fprintln(out, "path:", res.Path)
	return nil
}

// loadGrid parses path, or builds a cfg.Rows×cfg.Cols grid with the end in
// the bottom-right corner.
func loadGrid(path string, cfg config.Config, c gridgraph.Connectivity) (*gridgraph.Grid, error) {
	if path == "" {
		g, err := gridgraph.New(cfg.Rows, cfg.Cols, gridgraph.WithConnectivity(c))
		if err != nil {
			return nil, err
		}
		end := gridgraph.Coord{Row: cfg.Rows - 1, Col: cfg.Cols - 1}
		if err = g.SetRole(end, gridgraph.RoleEnd); err != nil {
			return nil, err
		}
		return g, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return gridgraph.Parse(string(raw), gridgraph.WithConnectivity(c))
}

// generateGrid builds a cfg.Rows×cfg.Cols map with a seeded generator. Random
// maps keep the start and end in opposite corners; mazes place them in the
// first and last rooms.
func generateGrid(kind string, seed int64, density float64, cfg config.Config, c gridgraph.Connectivity) (*gridgraph.Grid, error) {
	gopts := []gridgraph.Option{gridgraph.WithConnectivity(c)}
	bopts := []builder.BuilderOption{builder.WithSeed(seed)}
	switch kind {
	case "maze":
		return builder.BuildGrid(cfg.Rows, cfg.Cols, gopts, bopts, builder.Maze())
	case "wilson":
		return builder.BuildGrid(cfg.Rows, cfg.Cols, gopts, bopts, builder.WilsonMaze())
	case "random":
		corner := gridgraph.Coord{Row: cfg.Rows - 1, Col: cfg.Cols - 1}
		return builder.BuildGrid(cfg.Rows, cfg.Cols, gopts, bopts,
			builder.Endpoints(gridgraph.Coord{}, corner),
			builder.RandomWalls(density),
		)
	default:
		return nil, fmt.Errorf("-generate must be maze, wilson or random, got %q", kind)
	}
}

// printRegions reports how walls partition the map and whether the start
// can reach the end at all.
func printRegions(out io.Writer, g *gridgraph.Grid) {
	comps := g.ConnectedComponents()
	fmt.Fprintf(out, "grid %dx%d, %d region(s)", g.Rows(), g.Cols(), len(comps))
	if end, ok := g.End(); ok {
		fmt.Fprintf(out, ", start-end connected: %v", g.Connected(g.Start().Coord, end.Coord))
	}
	fmt.Fprintln(out)
}
