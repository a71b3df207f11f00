package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request with latency and recovers from panics so
// a single broken handler never takes the process down.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				logrus.WithFields(logrus.Fields{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
					"panic":  fmt.Sprintf("%v", recovered),
					"stack":  string(debug.Stack()),
				}).Error("request panicked")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "Internal Server Error",
					},
				})
				return
			}

			entry := logrus.WithFields(logrus.Fields{
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"query":      c.Request.URL.RawQuery,
				"status":     c.Writer.Status(),
				"client_ip":  c.ClientIP(),
				"latency":    time.Since(start).String(),
				"request_id": requestID(c),
			})

			switch {
			case c.Writer.Status() >= http.StatusInternalServerError:
				entry.Error("request failed")
			case len(c.Errors) > 0:
				entry.WithField("errors", c.Errors.String()).Warn("request completed with errors")
			default:
				entry.Info("request completed")
			}
		}()

		c.Next()
	}
}

func requestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = c.GetHeader("X-Request-Id")
	}
	return id
}
