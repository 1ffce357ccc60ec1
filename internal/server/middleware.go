package server

import (
	"net/http"
	"time"

	"meme-market/internal/marketerrors"
	"meme-market/internal/metrics"
	"meme-market/internal/wallet"
	"meme-market/services/market/helpers"
	"meme-market/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// MetricsMiddleware records request counts and latency by route template
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// SessionLookup resolves a session token
type SessionLookup interface {
	Get(token string) (*wallet.Session, bool)
}

// RequireSession rejects requests without a valid X-Session-Token header
func RequireSession(sessions SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(helpers.SessionTokenHeader)
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrNotAuthenticated, "missing session token")
			c.Abort()
			return
		}
		s, ok := sessions.Get(token)
		if !ok || s.State() != wallet.Authenticated {
			utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrNotAuthenticated, "invalid session token")
			c.Abort()
			return
		}
		helpers.SetSession(c, token, s)
		c.Next()
	}
}
