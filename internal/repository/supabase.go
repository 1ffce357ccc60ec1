package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
	"meme-market/internal/supabase"
)

// voteCASAttempts bounds how often a vote is re-read after losing a counter race.
const voteCASAttempts = 5

type memeRow struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	Tags         []string  `json:"tags"`
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	OwnerID      string    `json:"owner_id"`
	OwnerName    string    `json:"owner_name"`
	Price        int       `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	AICaption    *string   `json:"ai_caption"`
	VibeAnalysis *string   `json:"vibe_analysis"`
	Version      int64     `json:"version"`
}

type bidRow struct {
	ID        string    `json:"id"`
	MemeID    string    `json:"meme_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func toMemeRow(m model.Meme) memeRow {
	row := memeRow{
		ID: m.MemeID, Title: m.Title, ImageURL: m.ImageURL, Tags: m.Tags,
		Upvotes: m.Upvotes, Downvotes: m.Downvotes, OwnerID: m.OwnerID, OwnerName: m.OwnerName,
		Price: m.Price, CreatedAt: m.CreatedAt, Version: m.Version,
	}
	if row.Tags == nil {
		row.Tags = []string{}
	}
	if m.AICaption != "" {
		row.AICaption = &m.AICaption
	}
	if m.VibeAnalysis != "" {
		row.VibeAnalysis = &m.VibeAnalysis
	}
	return row
}

func (r memeRow) toModel() model.Meme {
	m := model.Meme{
		MemeID: r.ID, Title: r.Title, ImageURL: r.ImageURL, Tags: r.Tags,
		Upvotes: r.Upvotes, Downvotes: r.Downvotes, OwnerID: r.OwnerID, OwnerName: r.OwnerName,
		Price: r.Price, CreatedAt: r.CreatedAt, Version: r.Version,
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if r.AICaption != nil {
		m.AICaption = *r.AICaption
	}
	if r.VibeAnalysis != nil {
		m.VibeAnalysis = *r.VibeAnalysis
	}
	return m
}

// SupabaseRepo implements MarketDB against Supabase tables through PostgREST.
type SupabaseRepo struct {
	client *supabase.Client
}

// NewSupabaseRepo creates a SupabaseRepo using an existing client.
func NewSupabaseRepo(client *supabase.Client) *SupabaseRepo {
	return &SupabaseRepo{client: client}
}

// ListMemes returns every meme ordered by created_at descending.
func (r *SupabaseRepo) ListMemes(ctx context.Context) ([]model.Meme, error) {
	var rows []memeRow
	if err := r.selectInto(ctx, r.client.From("memes").Select("*").
		Order("created_at", false).Order("id", false), &rows); err != nil {
		return nil, fmt.Errorf("list memes: %w", err)
	}

	memes := make([]model.Meme, 0, len(rows))
	for _, row := range rows {
		memes = append(memes, row.toModel())
	}
	return memes, nil
}

// GetMeme reads a single meme row.
func (r *SupabaseRepo) GetMeme(ctx context.Context, memeID string) (model.Meme, error) {
	meme, err := r.getMeme(ctx, memeID)
	if err != nil {
		return model.Meme{}, fmt.Errorf("get meme %s: %w", memeID, err)
	}
	return meme, nil
}

// InsertMeme stores a new meme row.
func (r *SupabaseRepo) InsertMeme(ctx context.Context, meme model.Meme) error {
	resp, err := r.client.From("memes").ExecuteInsert(ctx, toMemeRow(meme))
	if err != nil {
		return remoteErr("insert meme "+meme.MemeID, err)
	}
	if err := resp.Err(); err != nil {
		return remoteErr("insert meme "+meme.MemeID, err)
	}
	return nil
}

// IncrementVotes reads the counter and writes it back conditioned on the value read,
// retrying when another writer got there first.
func (r *SupabaseRepo) IncrementVotes(ctx context.Context, memeID string, kind model.VoteKind) (model.Meme, error) {
	var column string
	switch kind {
	case model.Upvote:
		column = "upvotes"
	case model.Downvote:
		column = "downvotes"
	default:
		return model.Meme{}, fmt.Errorf("increment votes for meme %s: unknown vote kind %q", memeID, kind)
	}

	for attempt := 0; attempt < voteCASAttempts; attempt++ {
		current, err := r.getMeme(ctx, memeID)
		if err != nil {
			return model.Meme{}, fmt.Errorf("increment votes for meme %s: %w", memeID, err)
		}

		seen := current.Upvotes
		if kind == model.Downvote {
			seen = current.Downvotes
		}

		updated, ok, err := r.patchOne(ctx,
			r.client.From("memes").Eq("id", memeID).Eq(column, seen),
			map[string]any{column: seen + 1})
		if err != nil {
			return model.Meme{}, fmt.Errorf("increment votes for meme %s: %w", memeID, err)
		}
		if ok {
			return updated, nil
		}
	}
	return model.Meme{}, fmt.Errorf("increment votes for meme %s: %w", memeID, marketerrors.ErrStaleMeme)
}

// UpdateOwnership sets owner and price when version still equals expectedVersion.
func (r *SupabaseRepo) UpdateOwnership(ctx context.Context, memeID string, expectedVersion int64, ownerID, ownerName string, price int) (model.Meme, error) {
	updated, ok, err := r.patchOne(ctx,
		r.client.From("memes").Eq("id", memeID).Eq("version", expectedVersion),
		map[string]any{
			"owner_id":   ownerID,
			"owner_name": ownerName,
			"price":      price,
			"version":    expectedVersion + 1,
		})
	if err != nil {
		return model.Meme{}, fmt.Errorf("update ownership of meme %s: %w", memeID, err)
	}
	if ok {
		return updated, nil
	}

	if _, err := r.getMeme(ctx, memeID); err != nil {
		return model.Meme{}, fmt.Errorf("update ownership of meme %s: %w", memeID, err)
	}
	return model.Meme{}, fmt.Errorf("update ownership of meme %s: version %d: %w", memeID, expectedVersion, marketerrors.ErrStaleMeme)
}

// InsertBid appends a bid row.
func (r *SupabaseRepo) InsertBid(ctx context.Context, bid model.Bid) error {
	resp, err := r.client.From("bids").ExecuteInsert(ctx, bidRow{
		ID: bid.BidID, MemeID: bid.MemeID, UserID: bid.UserID, UserName: bid.UserName,
		Amount: bid.Amount, CreatedAt: bid.CreatedAt,
	})
	if err != nil {
		return remoteErr("insert bid for meme "+bid.MemeID, err)
	}
	if err := resp.Err(); err != nil {
		var apiErr *supabase.APIError
		if errors.As(err, &apiErr) && apiErr.Code == foreignKeyViolation {
			return fmt.Errorf("insert bid for meme %s: %w", bid.MemeID, marketerrors.ErrMemeNotFound)
		}
		return remoteErr("insert bid for meme "+bid.MemeID, err)
	}
	return nil
}

// ListTopBids returns at most limit bids for a meme ordered by amount descending.
func (r *SupabaseRepo) ListTopBids(ctx context.Context, memeID string, limit int) ([]model.Bid, error) {
	var rows []bidRow
	q := r.client.From("bids").Select("*").Eq("meme_id", memeID).
		Order("amount", false).Order("created_at", true).Order("id", true).Limit(limit)
	if err := r.selectInto(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("list bids for meme %s: %w", memeID, err)
	}

	bids := make([]model.Bid, 0, len(rows))
	for _, row := range rows {
		bids = append(bids, model.Bid{
			BidID: row.ID, MemeID: row.MemeID, UserID: row.UserID, UserName: row.UserName,
			Amount: row.Amount, CreatedAt: row.CreatedAt,
		})
	}
	return bids, nil
}

func (r *SupabaseRepo) getMeme(ctx context.Context, memeID string) (model.Meme, error) {
	var rows []memeRow
	if err := r.selectInto(ctx, r.client.From("memes").Select("*").Eq("id", memeID).Limit(1), &rows); err != nil {
		return model.Meme{}, err
	}
	if len(rows) == 0 {
		return model.Meme{}, marketerrors.ErrMemeNotFound
	}
	return rows[0].toModel(), nil
}

func (r *SupabaseRepo) selectInto(ctx context.Context, q *supabase.QueryBuilder, dst any) error {
	resp, err := q.Execute(ctx)
	if err != nil {
		return remoteErr("select", err)
	}
	if err := resp.Err(); err != nil {
		return remoteErr("select", err)
	}
	if err := resp.JSON(dst); err != nil {
		return remoteErr("decode rows", err)
	}
	return nil
}

// patchOne reports ok=false when the filters matched no row.
func (r *SupabaseRepo) patchOne(ctx context.Context, q *supabase.QueryBuilder, data map[string]any) (model.Meme, bool, error) {
	resp, err := q.ExecuteUpdate(ctx, data)
	if err != nil {
		return model.Meme{}, false, remoteErr("update", err)
	}
	if err := resp.Err(); err != nil {
		return model.Meme{}, false, remoteErr("update", err)
	}

	var rows []memeRow
	if err := resp.JSON(&rows); err != nil {
		return model.Meme{}, false, remoteErr("decode rows", err)
	}
	if len(rows) == 0 {
		return model.Meme{}, false, nil
	}
	return rows[0].toModel(), true, nil
}
