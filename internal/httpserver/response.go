package httpserver

import (
	"errors"
	"log"
	"net/http"

	"cartsession-api/internal/domain"
	"github.com/gin-gonic/gin"
)

// apiNamespace tags every response so clients can build hypermedia links.
const apiNamespace = "cartsession/v2"

type errorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func respond(c *gin.Context, status int, payload interface{}) {
	c.Header("X-CartSession-API", apiNamespace)
	c.JSON(status, payload)
}

// respondError converts service faults into the structured error body. Any
// error that is not part of the taxonomy becomes an opaque 500.
func respondError(c *gin.Context, logger *log.Logger, err error) {
	c.Header("X-CartSession-API", apiNamespace)

	var dataErr *domain.DataError
	if errors.As(err, &dataErr) {
		data := map[string]interface{}{}
		for k, v := range dataErr.Data {
			data[k] = v
		}
		data["status"] = dataErr.Status
		c.JSON(dataErr.Status, errorResponse{
			Code:    dataErr.Code,
			Message: dataErr.Message,
			Data:    data,
		})
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{
			Code:    domain.CodeSessionNotValid,
			Message: "Cart in session is not valid!",
			Data:    map[string]interface{}{"status": http.StatusNotFound},
		})
		return
	}

	if logger != nil {
		logger.Printf("httpserver: %s %s error=%v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(http.StatusInternalServerError, errorResponse{
		Code:    "internal_error",
		Message: "Something went wrong!",
		Data:    map[string]interface{}{"status": http.StatusInternalServerError},
	})
}
