package httpserver

import (
	"log"
	"net/http"
	"strconv"

	sessionsvc "cartsession-api/internal/service/session"
	"github.com/gin-gonic/gin"
)

type sessionsResponse struct {
	*sessionsvc.SessionsPage
	Prev string `json:"prev,omitempty"`
	Next string `json:"next,omitempty"`
}

func listSessionsHandler(svc *sessionsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.List(c.Request.Context(), sessionsvc.ListInput{
			Page:    intQuery(c, "page", 1),
			PerPage: intQuery(c, "per_page", 10),
			OrderBy: c.DefaultQuery("orderby", "cart_created"),
			Order:   c.DefaultQuery("order", "DESC"),
		})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		out := sessionsResponse{SessionsPage: page}
		if page.PrevPage > 0 {
			out.Prev = pageURL(c, page.PrevPage)
		}
		if page.NextPage > 0 {
			out.Next = pageURL(c, page.NextPage)
		}
		respond(c, http.StatusOK, out)
	}
}

// pageURL rebuilds the listing URL with the caller's query parameters and
// the given page number.
func pageURL(c *gin.Context, page int) string {
	q := c.Request.URL.Query()
	q.Set("page", strconv.Itoa(page))
	return c.Request.URL.Path + "?" + q.Encode()
}

func intQuery(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return def
	}
	return v
}
