// Package api exposes grid generation and path search over HTTP.
package api

import (
	"gridpath/pathfinding"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware lets browser front ends call the API from any origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// NewRouter wires the handlers onto a gin engine. opts configure the path
// finders of both search modes.
func NewRouter(opts ...pathfinding.Option) *gin.Engine {
	h := NewHandler(opts...)

	router := gin.Default()
	router.Use(CORSMiddleware())

	group := router.Group("/api")
	group.GET("/health", h.Health)
	group.GET("/grid", h.Grid)
	group.POST("/path", h.Path)
	return router
}

// SetupRouter returns a router with the default path finder.
func SetupRouter() *gin.Engine {
	return NewRouter()
}
