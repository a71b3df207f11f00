package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StaffTokenAuth protects staff endpoints with a static bearer token.
// Session management lives in an external service; the core only needs to
// tell staff traffic apart from the public intake form.
func StaffTokenAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			logAuthFailure(c, http.StatusInternalServerError, "token_not_configured")
			writeAuthError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Staff token is not configured")
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logAuthFailure(c, http.StatusUnauthorized, "missing_auth")
			writeAuthError(c, http.StatusUnauthorized, "AUTH_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logAuthFailure(c, http.StatusUnauthorized, "invalid_auth_format")
			writeAuthError(c, http.StatusUnauthorized, "AUTH_INVALID", "Authorization header must be 'Bearer <token>'")
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(token)) != 1 {
			logAuthFailure(c, http.StatusForbidden, "invalid_token")
			writeAuthError(c, http.StatusForbidden, "AUTH_INVALID", "Invalid staff token")
			return
		}

		c.Next()
	}
}

func writeAuthError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func logAuthFailure(c *gin.Context, status int, reason string) {
	logrus.WithFields(logrus.Fields{
		"status":     status,
		"reason":     reason,
		"path":       c.Request.URL.Path,
		"request_id": requestID(c),
	}).Warn("staff auth failed")
}
