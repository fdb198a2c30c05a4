package main

import (
	"net/http"
	"time"

	"github.com/ivasik-k7/leetcode-stats/internal/api"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func routes(handlers *api.Handlers, handlerTimeout time.Duration) http.Handler {
	g := gin.New()
	g.Use(gin.Logger())
	g.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		api.InternalServerError(c)
	}))
	g.Use(requestIDMiddleware())

	g.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	g.NoRoute(api.NotFound)

	g.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the API"})
	})

	health := g.Group("/health")
	{
		health.GET("", healthHandler)
	}

	v1 := g.Group("/api/v1")
	{
		v1.GET("/statistic/:username", withTimeout(handlerTimeout, handlers.GetStatistic))
		// A bare /statistic (or trailing slash) means no username was given.
		v1.GET("/statistic", api.MissingUsername)
	}

	return g
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
