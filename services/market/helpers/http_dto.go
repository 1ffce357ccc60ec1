package helpers

import (
	"time"

	"meme-market/internal/ledger"
	model "meme-market/internal/models"
)

// Request DTOs
type LoginRequest struct {
	Name string `json:"name" binding:"required"`
}

type SubmitMemeRequest struct {
	Title    string   `json:"title" binding:"required"`
	ImageURL string   `json:"image_url" binding:"required"`
	Tags     []string `json:"tags"`
	Price    int      `json:"price" binding:"gte=0"`
}

type PlaceBidRequest struct {
	Amount int `json:"amount"`
}

// Response DTOs
type UserResponse struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Credits      int      `json:"credits"`
	Avatar       string   `json:"avatar,omitempty"`
	JoinedAt     string   `json:"joined_at"`
	OwnedMemeIDs []string `json:"owned_meme_ids"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type MemeResponse struct {
	MemeID       string   `json:"meme_id"`
	Title        string   `json:"title"`
	ImageURL     string   `json:"image_url"`
	Tags         []string `json:"tags"`
	Upvotes      int      `json:"upvotes"`
	Downvotes    int      `json:"downvotes"`
	NetScore     int      `json:"net_score"`
	OwnerID      string   `json:"owner_id"`
	OwnerName    string   `json:"owner_name"`
	Price        int      `json:"price"`
	CreatedAt    string   `json:"created_at"`
	AICaption    string   `json:"ai_caption,omitempty"`
	VibeAnalysis string   `json:"vibe_analysis,omitempty"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	MemeID    string `json:"meme_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Amount    int    `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type BidResultResponse struct {
	Meme        MemeResponse `json:"meme"`
	Bid         BidResponse  `json:"bid"`
	Transferred bool         `json:"transferred"`
	Credits     int          `json:"credits"`
}

type DuelResponse struct {
	Left  MemeResponse `json:"left"`
	Right MemeResponse `json:"right"`
}

type PortfolioResponse struct {
	UserID     string         `json:"user_id"`
	Memes      []MemeResponse `json:"memes"`
	TotalValue int            `json:"total_value"`
}

type BonusResponse struct {
	Credits int `json:"credits"`
}

func ToUserResponse(u model.User, owned []string) UserResponse {
	if owned == nil {
		owned = []string{}
	}
	return UserResponse{
		UserID:       u.UserID,
		Name:         u.Name,
		Credits:      u.Credits,
		Avatar:       u.Avatar,
		JoinedAt:     u.JoinedAt.UTC().Format(time.RFC3339),
		OwnedMemeIDs: owned,
	}
}

func ToMemeResponse(m model.Meme) MemeResponse {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return MemeResponse{
		MemeID:       m.MemeID,
		Title:        m.Title,
		ImageURL:     m.ImageURL,
		Tags:         tags,
		Upvotes:      m.Upvotes,
		Downvotes:    m.Downvotes,
		NetScore:     m.NetScore(),
		OwnerID:      m.OwnerID,
		OwnerName:    m.OwnerName,
		Price:        m.Price,
		CreatedAt:    m.CreatedAt.UTC().Format(time.RFC3339),
		AICaption:    m.AICaption,
		VibeAnalysis: m.VibeAnalysis,
	}
}

func ToMemeResponses(memes []model.Meme) []MemeResponse {
	out := make([]MemeResponse, 0, len(memes))
	for _, m := range memes {
		out = append(out, ToMemeResponse(m))
	}
	return out
}

func ToBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		MemeID:    b.MemeID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, ToBidResponse(b))
	}
	return out
}

func ToPortfolioResponse(p ledger.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		UserID:     p.UserID,
		Memes:      ToMemeResponses(p.Memes),
		TotalValue: p.TotalValue,
	}
}
