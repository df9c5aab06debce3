package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"litecal/internal/logging"
)

// JSONMiddleware enforces JSON content on mutating requests and stamps the
// response content type.
func JSONMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "application/json; charset=utf-8")

		if c.Request.Method == http.MethodPost || c.Request.Method == http.MethodPut {
			contentType := c.GetHeader("Content-Type")
			if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
				c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, ErrorResponse{
					Error: "Content-Type must be application/json",
				})
				return
			}
		}

		c.Next()
	}
}

// LoggingMiddleware logs each request with its status and latency.
func LoggingMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("%s %s from %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.ClientIP(),
			c.Writer.Status(), time.Since(start))
	}
}
