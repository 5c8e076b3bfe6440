package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handler *LookupHandler) {
	r.engine.GET("/health", healthCheck)

	lookups := r.api.Group("/lookups")
	{
		lookups.GET("", handler.ListLookups)
		lookups.GET("/:name", handler.RunLookup)
	}
}

// Handler exposes the engine for use with an http.Server.
func (r *Router) Handler() http.Handler {
	return r.engine
}

func healthCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}
