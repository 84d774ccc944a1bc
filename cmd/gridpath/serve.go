package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/api"
	"github.com/katalvlaran/gridpath/api/i"
	searchapi "github.com/katalvlaran/gridpath/api/search"
	"github.com/katalvlaran/gridpath/config"
)

// serveCmd starts the HTTP API and blocks until the listener fails.
func serveCmd(cfg config.Config) error {
	gin.SetMode(cfg.GinMode)

	store, err := searchapi.NewRunStore(cfg.MaxRuns)
	if err != nil {
		return fmt.Errorf("creating run store: %w", err)
	}
	appLogger.Info(fmt.Sprintf("Run store initialized (capacity %d)", cfg.MaxRuns))

	searchLogger, err := config.NewLogger("SEARCH", config.ColorCyan, os.Stdout)
	if err != nil {
		return fmt.Errorf("creating search logger: %w", err)
	}
	searchController, err := searchapi.NewSearchController(store, searchLogger,
		searchapi.WithMaxCells(cfg.MaxCells),
	)
	if err != nil {
		return fmt.Errorf("creating search controller: %w", err)
	}
	appLogger.Info("Search controller initialized")

	router := api.NewRouter(api.Config{
		Addr:        cfg.Addr(),
		BaseURL:     "/api",
		Controllers: []i.Controller{searchController},
		Middleware:  []gin.HandlerFunc{api.CORSMiddleware(cfg.CORSOrigin)},
	})
	appLogger.Info(fmt.Sprintf("Listening on %s", cfg.Addr()))

	return router.Run()
}
