package ledger

import (
	"fmt"
	"strings"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
)

var popularTags = []string{"doge", "cyberpunk", "neon", "crypto", "glitch", "matrix", "cat"}

// Filter narrows the meme list. Zero values match everything.
type Filter struct {
	Tag   string
	Query string
}

// Portfolio is the set of memes a user owns
type Portfolio struct {
	UserID     string       `json:"user_id"`
	Memes      []model.Meme `json:"memes"`
	TotalValue int          `json:"total_value"`
}

// Memes returns the cached memes, newest first, matching the filter.
func (l *Ledger) Memes(f Filter) []model.Meme {
	tag := strings.ToLower(strings.TrimSpace(f.Tag))
	query := strings.ToLower(strings.TrimSpace(f.Query))

	all := l.snapshot()
	out := make([]model.Meme, 0, len(all))
	for _, m := range all {
		if tag != "" && !m.HasTag(tag) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(m.Title), query) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// PopularTags lists the tags suggested for browsing
func (l *Ledger) PopularTags() []string {
	return append([]string(nil), popularTags...)
}

// Portfolio returns the cached memes owned by userID and the sum of their prices
func (l *Ledger) Portfolio(userID string) Portfolio {
	p := Portfolio{UserID: userID, Memes: []model.Meme{}}
	for _, m := range l.snapshot() {
		if m.OwnerID != userID {
			continue
		}
		p.Memes = append(p.Memes, m)
		p.TotalValue += m.Price
	}
	return p
}

// OwnedMemeIDs derives the ids of the memes a user owns
func (l *Ledger) OwnedMemeIDs(userID string) []string {
	ids := []string{}
	for _, m := range l.Portfolio(userID).Memes {
		ids = append(ids, m.MemeID)
	}
	return ids
}

// Duel picks two distinct memes at random from the cache
func (l *Ledger) Duel() (model.Meme, model.Meme, error) {
	memes := l.snapshot()
	if len(memes) < 2 {
		return model.Meme{}, model.Meme{}, fmt.Errorf("ledger: %w - duel needs two memes, have %d",
			marketerrors.ErrNotEnoughMemes, len(memes))
	}

	i := l.intN(len(memes))
	j := l.intN(len(memes) - 1)
	if j >= i {
		j++
	}
	return memes[i], memes[j], nil
}
