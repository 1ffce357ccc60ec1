package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// MarketDB is the storage contract the ledger depends on. Implementations are
// the authoritative copy of memes and bids.
type MarketDB interface {
	ListMemes(ctx context.Context) ([]model.Meme, error)
	GetMeme(ctx context.Context, memeID string) (model.Meme, error)
	InsertMeme(ctx context.Context, meme model.Meme) error
	IncrementVotes(ctx context.Context, memeID string, kind model.VoteKind) (model.Meme, error)
	UpdateOwnership(ctx context.Context, memeID string, expectedVersion int64, ownerID, ownerName string, price int) (model.Meme, error)
	InsertBid(ctx context.Context, bid model.Bid) error
	ListTopBids(ctx context.Context, memeID string, limit int) ([]model.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu    sync.RWMutex
	memes map[string]model.Meme  // key: memeID -> value: meme
	bids  map[string][]model.Bid // key: memeID -> value: bids in insertion order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		memes: make(map[string]model.Meme),
		bids:  make(map[string][]model.Bid),
	}
}

// ListMemes returns every meme, most recently created first
func (r *MemoryRepo) ListMemes(_ context.Context) ([]model.Meme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memes := make([]model.Meme, 0, len(r.memes))
	for _, m := range r.memes {
		memes = append(memes, cloneMeme(m))
	}
	SortNewestFirst(memes)
	return memes, nil
}

// GetMeme returns the stored copy of one meme
func (r *MemoryRepo) GetMeme(_ context.Context, memeID string) (model.Meme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meme, ok := r.memes[memeID]
	if !ok {
		return model.Meme{}, fmt.Errorf("get meme %s: %w", memeID, marketerrors.ErrMemeNotFound)
	}
	return cloneMeme(meme), nil
}

// InsertMeme stores a new meme
func (r *MemoryRepo) InsertMeme(_ context.Context, meme model.Meme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.memes[meme.MemeID]; exists {
		return fmt.Errorf("insert meme %s: duplicate id: %w", meme.MemeID, marketerrors.ErrRemoteFailure)
	}
	r.memes[meme.MemeID] = cloneMeme(meme)
	return nil
}

// IncrementVotes adds one to the up or down counter of a meme
func (r *MemoryRepo) IncrementVotes(_ context.Context, memeID string, kind model.VoteKind) (model.Meme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meme, ok := r.memes[memeID]
	if !ok {
		return model.Meme{}, fmt.Errorf("increment votes for meme %s: %w", memeID, marketerrors.ErrMemeNotFound)
	}

	switch kind {
	case model.Upvote:
		meme.Upvotes++
	case model.Downvote:
		meme.Downvotes++
	default:
		return model.Meme{}, fmt.Errorf("increment votes for meme %s: unknown vote kind %q", memeID, kind)
	}
	r.memes[memeID] = meme
	return cloneMeme(meme), nil
}

// UpdateOwnership sets owner and price if the stored version still matches expectedVersion
func (r *MemoryRepo) UpdateOwnership(_ context.Context, memeID string, expectedVersion int64, ownerID, ownerName string, price int) (model.Meme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meme, ok := r.memes[memeID]
	if !ok {
		return model.Meme{}, fmt.Errorf("update ownership of meme %s: %w", memeID, marketerrors.ErrMemeNotFound)
	}
	if meme.Version != expectedVersion {
		return model.Meme{}, fmt.Errorf("update ownership of meme %s: have version %d, want %d: %w",
			memeID, meme.Version, expectedVersion, marketerrors.ErrStaleMeme)
	}

	meme.OwnerID = ownerID
	meme.OwnerName = ownerName
	meme.Price = price
	meme.Version++
	r.memes[memeID] = meme
	return cloneMeme(meme), nil
}

// InsertBid appends a bid to the log of an existing meme
func (r *MemoryRepo) InsertBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.memes[bid.MemeID]; !ok {
		return fmt.Errorf("insert bid for meme %s: %w", bid.MemeID, marketerrors.ErrMemeNotFound)
	}
	r.bids[bid.MemeID] = append(r.bids[bid.MemeID], bid)
	return nil
}

// ListTopBids returns at most limit bids for a meme, highest amount first
func (r *MemoryRepo) ListTopBids(_ context.Context, memeID string, limit int) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := append([]model.Bid(nil), r.bids[memeID]...)
	SortHighestFirst(bids)
	if limit > 0 && len(bids) > limit {
		bids = bids[:limit]
	}
	return bids, nil
}

// AddMeme stores a meme as-is, replacing any meme with the same id. Used for seeding and tests.
func (r *MemoryRepo) AddMeme(meme model.Meme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.memes[meme.MemeID] = cloneMeme(meme)
}

// SortNewestFirst orders memes by creation time descending, then id descending
func SortNewestFirst(memes []model.Meme) {
	sort.SliceStable(memes, func(i, j int) bool {
		if !memes[i].CreatedAt.Equal(memes[j].CreatedAt) {
			return memes[i].CreatedAt.After(memes[j].CreatedAt)
		}
		return memes[i].MemeID > memes[j].MemeID
	})
}

// SortHighestFirst orders bids by amount descending; equal amounts keep the earliest bid first
func SortHighestFirst(bids []model.Bid) {
	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].Amount != bids[j].Amount {
			return bids[i].Amount > bids[j].Amount
		}
		if !bids[i].CreatedAt.Equal(bids[j].CreatedAt) {
			return bids[i].CreatedAt.Before(bids[j].CreatedAt)
		}
		return bids[i].BidID < bids[j].BidID
	})
}

func cloneMeme(m model.Meme) model.Meme {
	m.Tags = append([]string(nil), m.Tags...)
	return m
}
