package handler

//go:generate mockgen -source=session_handler.go -destination=mock_session_handler.go -package=handler

import (
	"net/http"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
	"meme-market/internal/wallet"
	"meme-market/services/market/helpers"
	"meme-market/utils"

	"github.com/gin-gonic/gin"
)

type SessionServiceInterface interface {
	Start(name string) (string, model.User, error)
	Get(token string) (*wallet.Session, bool)
	End(token string) bool
}

// OwnershipLookup derives a user's owned memes from the ledger
type OwnershipLookup interface {
	OwnedMemeIDs(userID string) []string
}

type SessionHandler struct {
	sessions SessionServiceInterface
	owned    OwnershipLookup
}

func NewSessionHandler(sessions SessionServiceInterface, owned OwnershipLookup) *SessionHandler {
	return &SessionHandler{sessions: sessions, owned: owned}
}

// LoginHandler handles POST /sessions
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	token, user, err := h.sessions.Start(req.Name)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.SessionResponse{
		Token: token,
		User:  helpers.ToUserResponse(user, h.owned.OwnedMemeIDs(user.UserID)),
	}, "logged in successfully")
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{"user_id": user.UserID})
}

// MeHandler handles GET /sessions/me
func (h *SessionHandler) MeHandler(c *gin.Context) {
	_, user, ok := requireUser(c)
	if !ok {
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user, h.owned.OwnedMemeIDs(user.UserID)), "session retrieved successfully")
}

// LogoutHandler handles DELETE /sessions/me
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	_, token, ok := helpers.CurrentSession(c)
	if !ok || !h.sessions.End(token) {
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrNotAuthenticated, "not authenticated")
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
}

// ClaimBonusHandler handles POST /sessions/me/bonus
func (h *SessionHandler) ClaimBonusHandler(c *gin.Context) {
	session, user, ok := requireUser(c)
	if !ok {
		return
	}

	credits, err := session.ClaimDailyBonus()
	if err != nil {
		helpers.HandleServiceError(c, "ClaimBonusHandler", err, map[string]any{"user_id": user.UserID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.BonusResponse{Credits: credits}, "daily bonus claimed")
	helpers.LogSuccess("ClaimBonusHandler", "daily bonus claimed", map[string]any{
		"user_id": user.UserID,
		"credits": credits,
	})
}
