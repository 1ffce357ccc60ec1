package server

import (
	"meme-market/internal/ledger"
	"meme-market/internal/metrics"
	"meme-market/internal/wallet"
	handler "meme-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(market *ledger.Ledger, sessions *wallet.Sessions, m *metrics.Metrics) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	if m != nil {
		router.Use(MetricsMiddleware(m))
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	marketHandler := handler.NewMarketHandler(market)
	sessionHandler := handler.NewSessionHandler(sessions, market)
	auth := RequireSession(sessions)

	sess := router.Group("/sessions")
	{
		sess.POST("", sessionHandler.LoginHandler)
		sess.GET("/me", auth, sessionHandler.MeHandler)
		sess.DELETE("/me", auth, sessionHandler.LogoutHandler)
		sess.POST("/me/bonus", auth, sessionHandler.ClaimBonusHandler)
	}

	memes := router.Group("/memes")
	{
		memes.GET("", marketHandler.ListMemesHandler)
		memes.POST("", auth, marketHandler.SubmitMemeHandler)
		memes.POST("/refresh", marketHandler.RefreshHandler)
		memes.GET("/:meme_id", marketHandler.GetMemeHandler)
		memes.POST("/:meme_id/upvote", auth, marketHandler.UpvoteHandler)
		memes.POST("/:meme_id/downvote", auth, marketHandler.DownvoteHandler)
		memes.POST("/:meme_id/bids", auth, marketHandler.PlaceBidHandler)
		memes.GET("/:meme_id/bids", marketHandler.TopBidsHandler)
	}

	router.GET("/leaderboard", marketHandler.LeaderboardHandler)
	router.GET("/duel", marketHandler.DuelHandler)
	router.GET("/tags/popular", marketHandler.PopularTagsHandler)

	users := router.Group("/users")
	{
		users.GET("/:user_id/portfolio", marketHandler.PortfolioHandler)
	}

	return router
}
