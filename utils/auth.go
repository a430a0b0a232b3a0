package utils

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"
)

const bearerPrefix = "Bearer "

// CreateBearerTokenMiddleware creates a middleware that validates Bearer tokens
func CreateBearerTokenMiddleware(validTokens []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			token, ok := strings.CutPrefix(auth, bearerPrefix)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
			}
			if !tokenAllowed(token, validTokens) {
				Logger.WithField("remote", c.Request().RemoteAddr).Warn("Rejected request with invalid bearer token")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			return next(c)
		}
	}
}

func tokenAllowed(token string, validTokens []string) bool {
	for _, validToken := range validTokens {
		if subtle.ConstantTimeCompare([]byte(token), []byte(validToken)) == 1 {
			return true
		}
	}
	return false
}
