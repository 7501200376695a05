package httpserver

import (
	"log"
	"time"

	sessionsvc "cartsession-api/internal/service/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries everything the routes need.
type Deps struct {
	SessionSvc         *sessionsvc.Service
	AccessToken        string
	RequireAccessToken bool
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Access-Token", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}))
	router.Use(requestIDMiddleware())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	v2 := router.Group("/v2", accessTokenMiddleware(deps.AccessToken, deps.RequireAccessToken))
	v2.GET("/session/:session_key", getSessionHandler(deps.SessionSvc, logger))
	v2.GET("/session/:session_key/items", getSessionItemsHandler(deps.SessionSvc, logger))
	v2.DELETE("/session/:session_key", deleteSessionHandler(deps.SessionSvc, logger))
	v2.GET("/sessions", listSessionsHandler(deps.SessionSvc, logger))

	return router
}
