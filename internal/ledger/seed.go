package ledger

import (
	"time"

	model "meme-market/internal/models"
)

// System owns the seeded listings.
const (
	SystemOwnerID   = "system"
	SystemOwnerName = "SYSTEM"
)

// SeedMemes returns the starter listings, created one minute apart ending at now.
func SeedMemes(now time.Time) []model.Meme {
	seed := []model.Meme{
		{
			MemeID:       "1",
			Title:        "Cyber Doge",
			ImageURL:     "https://source.unsplash.com/random/600x400/?cyberpunk,dog",
			Tags:         []string{"doge", "cyberpunk", "neon"},
			Upvotes:      69,
			Downvotes:    4,
			Price:        420,
			AICaption:    "When you hack the mainframe but forget to pet the doge",
			VibeAnalysis: "Neon Doge Energy",
		},
		{
			MemeID:       "2",
			Title:        "Stonks Guy in 2077",
			ImageURL:     "https://source.unsplash.com/random/600x400/?stock,neon",
			Tags:         []string{"stonks", "crypto", "money"},
			Upvotes:      42,
			Downvotes:    7,
			Price:        1337,
			AICaption:    "When your crypto portfolio goes up 0.001%",
			VibeAnalysis: "Dystopian Market Chaos",
		},
		{
			MemeID:       "3",
			Title:        "Matrix Cat",
			ImageURL:     "https://source.unsplash.com/random/600x400/?matrix,cat",
			Tags:         []string{"cat", "matrix", "glitch"},
			Upvotes:      128,
			Downvotes:    2,
			Price:        777,
			AICaption:    "I know kung-meow",
			VibeAnalysis: "Digital Feline Override",
		},
	}

	for i := range seed {
		seed[i].OwnerID = SystemOwnerID
		seed[i].OwnerName = SystemOwnerName
		seed[i].CreatedAt = now.Add(-time.Duration(len(seed)-1-i) * time.Minute)
		seed[i].Version = 1
	}
	return seed
}
