// Package api wires the HTTP facade: middleware, handlers and routes.
package api

import (
	"net/http"

	"seffaflik/internal/api/handlers"
	"seffaflik/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the gin engine serving /health and /api/v1.
func NewRouter(p *handlers.Provider, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))

	seriesHandler := handlers.NewSeriesHandler(p)
	entityHandler := handlers.NewEntityHandler(p)
	allHandler := handlers.NewAllHandler(p)
	rankHandler := handlers.NewRankHandler(p)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/series", seriesHandler.ListSeries)
		v1.GET("/series/:name", seriesHandler.GetSeries)
		v1.GET("/entities/:kind", entityHandler.ListEntities)
		v1.GET("/all/:name", allHandler.GetAll)
		v1.GET("/rank/:name", rankHandler.RankEntities)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router
}
