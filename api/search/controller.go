package searchapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// ErrNilStore is returned by NewSearchController without a run store.
var ErrNilStore = errors.New("searchapi: run store is nil")

const (
	// DefaultTimeout bounds a single search request.
	DefaultTimeout = 5 * time.Second

	// DefaultMaxCells is the largest map, in cells, a request may submit.
	DefaultMaxCells = 250_000

	// statusClientClosedRequest records a search abandoned by the client.
	statusClientClosedRequest = 499
)

// SearchController runs searches on submitted maps and serves stored results.
type SearchController struct {
	store    *RunStore
	logger   *config.Logger
	timeout  time.Duration
	maxCells int
}

// ControllerOption customizes a SearchController.
type ControllerOption func(*SearchController)

// WithTimeout bounds each search; non-positive values keep the default.
func WithTimeout(d time.Duration) ControllerOption {
	return func(sc *SearchController) {
		if d > 0 {
			sc.timeout = d
		}
	}
}

// WithMaxCells caps the size of submitted maps; non-positive values keep the default.
func WithMaxCells(n int) ControllerOption {
	return func(sc *SearchController) {
		if n > 0 {
			sc.maxCells = n
		}
	}
}

// NewSearchController initializes a SearchController. logger may be nil.
func NewSearchController(store *RunStore, logger *config.Logger, opts ...ControllerOption) (*SearchController, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	sc := &SearchController{
		store:    store,
		logger:   logger,
		timeout:  DefaultTimeout,
		maxCells: DefaultMaxCells,
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc, nil
}

// RegisterPublic registers public routes.
func (sc *SearchController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/health", sc.health)
	route.POST("/search", sc.search)
	route.GET("/runs/:ID", sc.runInfo)
}

func (sc *SearchController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// search parses the map, runs the requested algorithm and stores the result.
func (sc *SearchController) search(ctx *gin.Context) {
	// Escaped newlines take two bytes, so a map of n cells never needs more
	// than 3n bytes of JSON.
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, int64(sc.maxCells)*3+4096)

	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sc.tooLarge(ctx)
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if countCells(request.Map) > sc.maxCells {
		sc.tooLarge(ctx)
		return
	}

	conn, err := connectivity(request.Conn)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alg, err := algorithms.Parse(request.Algorithm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h, err := heuristic.ByName(request.Heuristic)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := gridgraph.Parse(request.Map, gridgraph.WithConnectivity(conn))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), sc.timeout)
	defer cancel()

	start := time.Now()
	out, err := algorithms.Run(timeoutCtx, g, alg, algorithms.WithHeuristic(h))
	elapsed := time.Since(start)
	switch {
	case err == nil, errors.Is(err, astar.ErrNoPath):
	case errors.Is(err, context.DeadlineExceeded):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "search timed out"})
		return
	case errors.Is(err, context.Canceled):
		// nobody is left to read a body
		sc.logInfo(fmt.Sprintf("search %s canceled by client", alg))
		ctx.AbortWithStatus(statusClientClosedRequest)
		return
	default:
		sc.logError(fmt.Sprintf("search %s: %v", alg, err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while searching"})
		return
	}

	response := SearchResponse{
		ID:            uuid.New(),
		Ran:           out.Ran,
		Algorithm:     alg.String(),
		Heuristic:     heuristicName(request.Heuristic),
		Found:         out.Found,
		Path:          toDTOs(out.Path),
		Steps:         out.Steps(),
		Cost:          out.Cost,
		Expanded:      out.Expanded,
		Order:         toDTOs(out.Order),
		Grid:          g.String(),
		ExecutionTime: float64(elapsed.Microseconds()) / 1000,
	}
	sc.store.Put(response)
	sc.logInfo(fmt.Sprintf("run %s: %s found=%v expanded=%d", response.ID, alg, out.Found, out.Expanded))

	ctx.JSON(http.StatusOK, response)
}

// runInfo retrieves a stored run.
func (sc *SearchController) runInfo(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	response, ok := sc.store.Get(ID)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (sc *SearchController) tooLarge(ctx *gin.Context) {
	ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{
		"error": fmt.Sprintf("map exceeds %d cells", sc.maxCells),
	})
}

// countCells counts the map symbols, ignoring line breaks and padding.
func countCells(m string) int {
	n := 0
	for i := 0; i < len(m); i++ {
		switch m[i] {
		case ' ', '\t', '\r', '\n':
		default:
			n++
		}
	}
	return n
}

func connectivity(n int) (gridgraph.Connectivity, error) {
	switch n {
	case 0, 4:
		return gridgraph.Conn4, nil
	case 8:
		return gridgraph.Conn8, nil
	}
	return 0, fmt.Errorf("conn must be 4 or 8, got %d", n)
}

func heuristicName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return "euclidean"
	case "none":
		return "zero"
	}
	return name
}

func (sc *SearchController) logInfo(msg string) {
	if sc.logger != nil {
		sc.logger.Info(msg)
	}
}

func (sc *SearchController) logError(msg string) {
	if sc.logger != nil {
		sc.logger.Error(msg)
	}
}
