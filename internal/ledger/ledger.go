// Package ledger holds the cached meme list and applies submissions, votes and bids against the store.
package ledger

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"meme-market/internal/caption"
	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
	"meme-market/internal/repository"
	"meme-market/utils"
)

// DefaultTopBids is the number of bids TopBids returns when no limit is given.
const DefaultTopBids = 5

// Bid outcomes reported to the Observer
const (
	OutcomePlaced     = "placed"
	OutcomeInstantBuy = "instant_buy"
	OutcomeRejected   = "rejected"
)

// Observer receives ledger events, typically to feed metrics
type Observer interface {
	VoteRecorded(kind model.VoteKind)
	BidRecorded(outcome string)
	MemeSubmitted()
}

type noopObserver struct{}

func (noopObserver) VoteRecorded(model.VoteKind) {}
func (noopObserver) BidRecorded(string)          {}
func (noopObserver) MemeSubmitted()              {}

// Option configures a Ledger
type Option func(*Ledger)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithObserver registers an event observer.
func WithObserver(o Observer) Option {
	return func(l *Ledger) {
		if o != nil {
			l.observer = o
		}
	}
}

// WithRandom replaces the random source used by Duel. intN must return a value in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(l *Ledger) { l.intN = intN }
}

// Ledger is the authoritative-store-backed cache of memes
type Ledger struct {
	repo      repository.MarketDB
	captioner caption.Captioner
	observer  Observer
	now       func() time.Time
	intN      func(n int) int

	mu    sync.RWMutex
	memes []model.Meme // most recently created first
}

// NewLedger creates a Ledger with an empty cache. Call Refresh to load the store.
func NewLedger(repo repository.MarketDB, captioner caption.Captioner, opts ...Option) *Ledger {
	l := &Ledger{
		repo:      repo,
		captioner: captioner,
		observer:  noopObserver{},
		now:       func() time.Time { return time.Now().UTC() },
		intN:      rand.IntN,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Refresh reloads the cache from the store. On failure the previous snapshot is kept.
func (l *Ledger) Refresh(ctx context.Context) error {
	memes, err := l.repo.ListMemes(ctx)
	if err != nil {
		utils.Error("failed to refresh memes", map[string]any{"error": err.Error()})
		return fmt.Errorf("ledger: %w - refresh failed: %w", marketerrors.ErrRemoteFailure, err)
	}
	repository.SortNewestFirst(memes)

	l.mu.Lock()
	l.memes = memes
	l.mu.Unlock()

	utils.Debug("memes refreshed", map[string]any{"count": len(memes)})
	return nil
}

// Upvote adds one upvote to a meme
func (l *Ledger) Upvote(ctx context.Context, memeID string) (model.Meme, error) {
	return l.vote(ctx, memeID, model.Upvote)
}

// Downvote adds one downvote to a meme
func (l *Ledger) Downvote(ctx context.Context, memeID string) (model.Meme, error) {
	return l.vote(ctx, memeID, model.Downvote)
}

func (l *Ledger) vote(ctx context.Context, memeID string, kind model.VoteKind) (model.Meme, error) {
	if memeID == "" {
		return model.Meme{}, fmt.Errorf("ledger: %w - empty meme id", marketerrors.ErrMemeNotFound)
	}

	meme, err := l.repo.IncrementVotes(ctx, memeID, kind)
	if err != nil {
		return model.Meme{}, fmt.Errorf("ledger: failed to %s meme %s: %w", kind, memeID, err)
	}

	l.replace(meme)
	l.observer.VoteRecorded(kind)
	return meme, nil
}

// Leaderboard returns the cached memes by net score, highest first.
// Equal scores put the newer meme first, then the larger id.
func (l *Ledger) Leaderboard() []model.Meme {
	memes := l.snapshot()
	sort.SliceStable(memes, func(i, j int) bool {
		si, sj := memes[i].NetScore(), memes[j].NetScore()
		if si != sj {
			return si > sj
		}
		if !memes[i].CreatedAt.Equal(memes[j].CreatedAt) {
			return memes[i].CreatedAt.After(memes[j].CreatedAt)
		}
		return memes[i].MemeID > memes[j].MemeID
	})
	return memes
}

// TopBids returns the highest bids for a meme. A limit of zero or less means DefaultTopBids.
func (l *Ledger) TopBids(ctx context.Context, memeID string, limit int) ([]model.Bid, error) {
	if limit <= 0 {
		limit = DefaultTopBids
	}

	bids, err := l.repo.ListTopBids(ctx, memeID, limit)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list bids for meme %s: %w", memeID, err)
	}
	if len(bids) > limit {
		bids = bids[:limit]
	}
	return bids, nil
}

// MemeByID looks a meme up in the cache only
func (l *Ledger) MemeByID(memeID string) (model.Meme, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, m := range l.memes {
		if m.MemeID == memeID {
			return copyMeme(m), nil
		}
	}
	return model.Meme{}, fmt.Errorf("ledger: %w - id %s", marketerrors.ErrMemeNotFound, memeID)
}

// snapshot copies the cache so callers never share slices with it
func (l *Ledger) snapshot() []model.Meme {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Meme, len(l.memes))
	for i, m := range l.memes {
		out[i] = copyMeme(m)
	}
	return out
}

func (l *Ledger) prepend(meme model.Meme) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.memes = append([]model.Meme{copyMeme(meme)}, l.memes...)
}

// replace swaps the cached row with the store's copy. Unknown ids are left to the next Refresh.
func (l *Ledger) replace(meme model.Meme) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.memes {
		if l.memes[i].MemeID == meme.MemeID {
			l.memes[i] = copyMeme(meme)
			return
		}
	}
}

func copyMeme(m model.Meme) model.Meme {
	m.Tags = append([]string(nil), m.Tags...)
	return m
}
