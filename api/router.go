// Package api wires gridpath's HTTP controllers into a gin engine.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/api/i"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	middleware  []gin.HandlerFunc
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Middleware  []gin.HandlerFunc // applied to every route, in order
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		middleware:  config.Middleware,
	}
}

// Handler builds the gin engine with every controller mounted under
// <baseURL>/v1.
func (r *Router) Handler() *gin.Engine {
	router := gin.Default()
	router.Use(r.middleware...)

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(v1)
			}
		}
	}

	return router
}

// Run starts the HTTP server. It blocks until the listener fails.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	return r.Handler().Run(r.addr)
}
