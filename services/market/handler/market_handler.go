package handler

//go:generate mockgen -source=market_handler.go -destination=mock_handler.go -package=handler

import (
	"context"
	"net/http"
	"strconv"

	"meme-market/internal/ledger"
	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
	"meme-market/internal/wallet"
	"meme-market/services/market/helpers"
	"meme-market/utils"

	"github.com/gin-gonic/gin"
)

type MarketServiceInterface interface {
	SubmitMeme(ctx context.Context, draft ledger.MemeDraft) (model.Meme, error)
	Upvote(ctx context.Context, memeID string) (model.Meme, error)
	Downvote(ctx context.Context, memeID string) (model.Meme, error)
	PlaceBid(ctx context.Context, memeID, bidderID, bidderName string, amount int, funds ledger.Funds) (ledger.BidResult, error)
	Leaderboard() []model.Meme
	TopBids(ctx context.Context, memeID string, limit int) ([]model.Bid, error)
	MemeByID(memeID string) (model.Meme, error)
	Refresh(ctx context.Context) error
	Memes(f ledger.Filter) []model.Meme
	PopularTags() []string
	Portfolio(userID string) ledger.Portfolio
	OwnedMemeIDs(userID string) []string
	Duel() (model.Meme, model.Meme, error)
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// ListMemesHandler handles GET /memes?tag=&q=
func (h *MarketHandler) ListMemesHandler(c *gin.Context) {
	memes := h.service.Memes(ledger.Filter{Tag: c.Query("tag"), Query: c.Query("q")})
	utils.JSONList(c, http.StatusOK, helpers.ToMemeResponses(memes), "memes retrieved successfully")
}

// SubmitMemeHandler handles POST /memes
func (h *MarketHandler) SubmitMemeHandler(c *gin.Context) {
	_, user, ok := requireUser(c)
	if !ok {
		return
	}

	var req helpers.SubmitMemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitMemeHandler", err)
		return
	}

	meme, err := h.service.SubmitMeme(c.Request.Context(), ledger.MemeDraft{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		Tags:      req.Tags,
		OwnerID:   user.UserID,
		OwnerName: user.Name,
		Price:     req.Price,
	})
	if err != nil {
		helpers.HandleServiceError(c, "SubmitMemeHandler", err, map[string]any{"user_id": user.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToMemeResponse(meme), "meme submitted successfully")
	helpers.LogSuccess("SubmitMemeHandler", "meme submitted successfully", map[string]any{
		"meme_id": meme.MemeID,
		"user_id": user.UserID,
	})
}

// RefreshHandler handles POST /memes/refresh
func (h *MarketHandler) RefreshHandler(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		helpers.HandleServiceError(c, "RefreshHandler", err, nil)
		return
	}
	memes := h.service.Memes(ledger.Filter{})
	utils.JSONList(c, http.StatusOK, helpers.ToMemeResponses(memes), "memes refreshed successfully")
}

// GetMemeHandler handles GET /memes/:meme_id
func (h *MarketHandler) GetMemeHandler(c *gin.Context) {
	memeID := c.Param("meme_id")
	meme, err := h.service.MemeByID(memeID)
	if err != nil {
		helpers.HandleServiceError(c, "GetMemeHandler", err, map[string]any{"meme_id": memeID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ToMemeResponse(meme), "meme retrieved successfully")
}

// UpvoteHandler handles POST /memes/:meme_id/upvote
func (h *MarketHandler) UpvoteHandler(c *gin.Context) {
	h.vote(c, "UpvoteHandler", h.service.Upvote)
}

// DownvoteHandler handles POST /memes/:meme_id/downvote
func (h *MarketHandler) DownvoteHandler(c *gin.Context) {
	h.vote(c, "DownvoteHandler", h.service.Downvote)
}

func (h *MarketHandler) vote(c *gin.Context, name string, apply func(context.Context, string) (model.Meme, error)) {
	if _, _, ok := requireUser(c); !ok {
		return
	}

	memeID := c.Param("meme_id")
	meme, err := apply(c.Request.Context(), memeID)
	if err != nil {
		helpers.HandleServiceError(c, name, err, map[string]any{"meme_id": memeID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.ToMemeResponse(meme), "vote recorded successfully")
}

// PlaceBidHandler handles POST /memes/:meme_id/bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	session, user, ok := requireUser(c)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	memeID := c.Param("meme_id")
	res, err := h.service.PlaceBid(c.Request.Context(), memeID, user.UserID, user.Name, req.Amount, session)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"meme_id": memeID,
			"user_id": user.UserID,
			"amount":  req.Amount,
		})
		return
	}

	resp := helpers.BidResultResponse{
		Meme:        helpers.ToMemeResponse(res.Meme),
		Bid:         helpers.ToBidResponse(res.Bid),
		Transferred: res.Transferred,
		Credits:     session.Balance(),
	}
	message := "bid recorded successfully"
	if res.Transferred {
		message = "meme bought successfully"
	}
	utils.JSONResponse(c, http.StatusCreated, resp, message)
	helpers.LogSuccess("PlaceBidHandler", message, map[string]any{
		"bid_id":  res.Bid.BidID,
		"meme_id": memeID,
		"user_id": user.UserID,
		"amount":  req.Amount,
	})
}

// TopBidsHandler handles GET /memes/:meme_id/bids?limit=
func (h *MarketHandler) TopBidsHandler(c *gin.Context) {
	memeID := c.Param("meme_id")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			helpers.HandleBindError(c, "TopBidsHandler", err)
			return
		}
		limit = n
	}

	bids, err := h.service.TopBids(c.Request.Context(), memeID, limit)
	if err != nil {
		helpers.HandleServiceError(c, "TopBidsHandler", err, map[string]any{"meme_id": memeID})
		return
	}
	utils.JSONList(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
}

// LeaderboardHandler handles GET /leaderboard
func (h *MarketHandler) LeaderboardHandler(c *gin.Context) {
	utils.JSONList(c, http.StatusOK, helpers.ToMemeResponses(h.service.Leaderboard()), "leaderboard retrieved successfully")
}

// DuelHandler handles GET /duel
func (h *MarketHandler) DuelHandler(c *gin.Context) {
	left, right, err := h.service.Duel()
	if err != nil {
		helpers.HandleServiceError(c, "DuelHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.DuelResponse{
		Left:  helpers.ToMemeResponse(left),
		Right: helpers.ToMemeResponse(right),
	}, "duel ready")
}

// PortfolioHandler handles GET /users/:user_id/portfolio
func (h *MarketHandler) PortfolioHandler(c *gin.Context) {
	userID := c.Param("user_id")
	p := h.service.Portfolio(userID)
	utils.JSONResponse(c, http.StatusOK, helpers.ToPortfolioResponse(p), "portfolio retrieved successfully")
}

// PopularTagsHandler handles GET /tags/popular
func (h *MarketHandler) PopularTagsHandler(c *gin.Context) {
	utils.JSONList(c, http.StatusOK, h.service.PopularTags(), "tags retrieved successfully")
}

// requireUser writes a 401 and reports false when the request has no signed-in session
func requireUser(c *gin.Context) (*wallet.Session, model.User, bool) {
	session, _, ok := helpers.CurrentSession(c)
	if ok {
		if user, signedIn := session.Current(); signedIn {
			return session, user, true
		}
	}
	utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrNotAuthenticated, "not authenticated")
	return nil, model.User{}, false
}
