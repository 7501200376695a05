package httpserver

import (
	"log"
	"net/http"
	"strconv"

	sessionsvc "cartsession-api/internal/service/session"
	"github.com/gin-gonic/gin"
)

// getSessionHandler serves the full field-filtered session projection.
func getSessionHandler(svc *sessionsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projection, err := svc.Project(c.Request.Context(), c.Param("session_key"), sessionsvc.ProjectOptions{
			Fields:         sessionsvc.ParseFields(c.Query("fields")),
			ShowThumbnails: boolQuery(c, "thumb"),
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}
		respond(c, http.StatusOK, projection)
	}
}

// getSessionItemsHandler serves only the items, always from the
// authoritative cart, ignoring field selection.
func getSessionItemsHandler(svc *sessionsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Items(c.Request.Context(), c.Param("session_key"), boolQuery(c, "thumb"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		respond(c, http.StatusOK, items)
	}
}

func deleteSessionHandler(svc *sessionsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("session_key")); err != nil {
			respondError(c, logger, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"message": "Session successfully deleted!"})
	}
}

func boolQuery(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.Query(name))
	return err == nil && v
}
