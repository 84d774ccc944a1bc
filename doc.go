// Package gridpath is the search core of a grid pathfinding visualizer.
//
// A map is a rectangular grid of cells. Each cell is free or a wall, and
// exactly one free cell is the start, with at most one end. Searches run step
// by step so a front end can paint every expansion as it happens.
//
// Packages:
//
//	gridgraph/  grid model, roles, walls, neighbor lists, text maps
//	heuristic/  distance estimates (euclidean, manhattan, octile, ...)
//	astar/      stepwise A* with open/closed/path marks and a redraw hook
//	dijkstra/   full distance field over the free cells
//	bfs/        unweighted breadth-first layers and hooks
//	algorithms/ one entry point that dispatches by algorithm name
//	builder/    seeded map generators: random walls and perfect mazes
//	config/     environment configuration and the console logger
//	api/        REST front end (gin) for remote searches
//	cmd/        the gridpath command: "run" in a terminal, "serve" over HTTP
//
// Quick start:
//
//	g, _ := gridgraph.Parse("S..\n.#.\n..E")
//	res, err := astar.Search(ctx, g, astar.WithHeuristic(heuristic.Manhattan))
//	fmt.Println(res.Found, res.Cost, err)
package gridpath
