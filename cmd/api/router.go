package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unignoramus11/lumen/internal/shared/middleware"
	"github.com/unignoramus11/lumen/pkg/container"
)

// SetupRouter registers the full API surface. Only POST /publish is
// authenticated; everything else is public reading.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		auth := v1.Group("/auth")
		{
			auth.POST("/login", c.AuthHandler.Login)
		}

		v1.POST("/publish", middleware.AuthMiddleware(c.JWTManager), c.EditionHandler.Publish)

		v1.GET("/daily", c.EditionHandler.Daily)
		v1.GET("/daily/photo", c.EditionHandler.DailyPhoto)
		v1.GET("/latest-date", c.EditionHandler.LatestDate)
		v1.GET("/calendar", c.EditionHandler.Calendar)

		// Standalone content proxies. Each returns its fallback payload
		// with a 500 when the upstream source is down, so clients always
		// have something to render.
		v1.GET("/poem", c.ContentHandler.Poem)
		v1.GET("/joke", c.ContentHandler.Joke)
		v1.GET("/activity", c.ContentHandler.Activity)
		v1.GET("/cat-fact", c.ContentHandler.CatFact)
		v1.GET("/dog-fact", c.ContentHandler.DogFact)
		v1.GET("/trivia-fact", c.ContentHandler.TriviaFact)
		v1.GET("/comic", c.ContentHandler.Comic)
	}

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Redis is optional; an unreachable cache does not degrade the
		// reported status.
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
