package models

import "time"

// User represents a marketplace participant and their wallet
type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Credits      int       `json:"credits"`
	Avatar       string    `json:"avatar,omitempty"`
	JoinedAt     time.Time `json:"joined_at"`
	OwnedMemeIDs []string  `json:"owned_meme_ids"`
}

// Meme represents a tagged image listed on the marketplace
type Meme struct {
	MemeID       string    `json:"meme_id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	Tags         []string  `json:"tags"`
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	OwnerID      string    `json:"owner_id"`
	OwnerName    string    `json:"owner_name"`
	Price        int       `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	AICaption    string    `json:"ai_caption,omitempty"`
	VibeAnalysis string    `json:"vibe_analysis,omitempty"`
	// Version changes whenever owner or price change.
	Version int64 `json:"version"`
}

// NetScore is the leaderboard ranking key.
func (m Meme) NetScore() int {
	return m.Upvotes - m.Downvotes
}

// HasTag reports whether the meme carries the exact tag.
func (m Meme) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Bid represents an immutable offer of credits for a meme
type Bid struct {
	BidID     string    `json:"bid_id"`
	MemeID    string    `json:"meme_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteKind selects which counter a vote increments
type VoteKind string

const (
	Upvote   VoteKind = "upvote"
	Downvote VoteKind = "downvote"
)
