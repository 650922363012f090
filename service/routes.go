package service

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

func SetupRoutes(h *Handlers, graphqlPath string, metrics http.Handler) *gin.Engine {
	routes := gin.New()
	routes.Use(gin.Recovery(), h.LogRequest)

	routes.GET("/activity/:username", h.Activity)
	routes.GET("/metrics", gin.WrapH(metrics))

	cachedRoutes := routes.Group("/")
	{
		cachedRoutes.Use(h.CacheUserRequest)

		cachedRoutes.GET(graphqlPath, h.GraphQL)
		cachedRoutes.POST(graphqlPath, h.GraphQL)
		cachedRoutes.GET("/store", h.Store)
	}

	return routes
}
