package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"meme-market/internal/marketerrors"
	"meme-market/internal/wallet"
	"meme-market/utils"

	"github.com/gin-gonic/gin"
)

// SessionTokenHeader carries the token returned by POST /sessions
const SessionTokenHeader = "X-Session-Token"

// gin context keys set by the session middleware
const (
	sessionKey = "market.session"
	tokenKey   = "market.token"
)

// SetSession stores the authenticated session on the request context
func SetSession(c *gin.Context, token string, s *wallet.Session) {
	c.Set(sessionKey, s)
	c.Set(tokenKey, token)
}

// CurrentSession returns the session stored by SetSession
func CurrentSession(c *gin.Context) (*wallet.Session, string, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, "", false
	}
	s, ok := v.(*wallet.Session)
	if !ok || s == nil {
		return nil, "", false
	}
	return s, c.GetString(tokenKey), true
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err onto the response and logs it at a level matching the status
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, fields)
		return
	}
	utils.Warn(handlerName+": "+message, fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrMemeNotFound):
		return http.StatusNotFound, "meme not found"
	case errors.Is(err, marketerrors.ErrInvalidMeme):
		return http.StatusBadRequest, "invalid meme details"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrInvalidIdentity):
		return http.StatusBadRequest, "invalid identity"
	case errors.Is(err, marketerrors.ErrNotEnoughMemes):
		return http.StatusBadRequest, "not enough memes"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, marketerrors.ErrStaleMeme):
		return http.StatusConflict, "meme changed, retry"
	case errors.Is(err, marketerrors.ErrInsufficientCredits):
		return http.StatusPaymentRequired, "insufficient credits"
	case errors.Is(err, marketerrors.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, marketerrors.ErrRemoteFailure):
		return http.StatusBadGateway, "store unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Debug(handlerName+": "+message, ctx)
}
