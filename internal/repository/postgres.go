package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"

	"github.com/lib/pq"
)

const memeColumns = `id, title, image_url, tags, upvotes, downvotes, owner_id, owner_name, price, created_at, ai_caption, vibe_analysis, version`

// foreignKeyViolation is the Postgres SQLSTATE for a failed REFERENCES check.
const foreignKeyViolation = "23503"

// PostgresRepo implements MarketDB on top of a PostgreSQL database.
type PostgresRepo struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresRepo creates a PostgresRepo. db must already have the schema from db.Schema applied.
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeme(row rowScanner) (model.Meme, error) {
	var (
		m       model.Meme
		tags    pq.StringArray
		caption sql.NullString
		vibe    sql.NullString
	)
	err := row.Scan(&m.MemeID, &m.Title, &m.ImageURL, &tags, &m.Upvotes, &m.Downvotes,
		&m.OwnerID, &m.OwnerName, &m.Price, &m.CreatedAt, &caption, &vibe, &m.Version)
	if err != nil {
		return model.Meme{}, err
	}
	m.Tags = []string(tags)
	if m.Tags == nil {
		m.Tags = []string{}
	}
	m.AICaption = caption.String
	m.VibeAnalysis = vibe.String
	return m, nil
}

// ListMemes returns every meme ordered by created_at descending.
func (r *PostgresRepo) ListMemes(ctx context.Context) ([]model.Meme, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+memeColumns+` FROM memes ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, remoteErr("list memes", err)
	}
	defer rows.Close()

	var memes []model.Meme
	for rows.Next() {
		m, err := scanMeme(rows)
		if err != nil {
			return nil, remoteErr("scan meme", err)
		}
		memes = append(memes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr("list memes", err)
	}
	return memes, nil
}

// GetMeme reads a single meme row.
func (r *PostgresRepo) GetMeme(ctx context.Context, memeID string) (model.Meme, error) {
	meme, err := scanMeme(r.DB.QueryRowContext(ctx, `SELECT `+memeColumns+` FROM memes WHERE id = $1`, memeID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Meme{}, fmt.Errorf("get meme %s: %w", memeID, marketerrors.ErrMemeNotFound)
	}
	if err != nil {
		return model.Meme{}, remoteErr("get meme "+memeID, err)
	}
	return meme, nil
}

// InsertMeme stores a new meme row.
func (r *PostgresRepo) InsertMeme(ctx context.Context, meme model.Meme) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO memes (`+memeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, meme.MemeID, meme.Title, meme.ImageURL, pq.Array(meme.Tags), meme.Upvotes, meme.Downvotes,
		meme.OwnerID, meme.OwnerName, meme.Price, meme.CreatedAt,
		nullString(meme.AICaption), nullString(meme.VibeAnalysis), meme.Version)
	if err != nil {
		return remoteErr("insert meme "+meme.MemeID, err)
	}
	return nil
}

// IncrementVotes adds one to the chosen counter in a single statement.
func (r *PostgresRepo) IncrementVotes(ctx context.Context, memeID string, kind model.VoteKind) (model.Meme, error) {
	var query string
	switch kind {
	case model.Upvote:
		query = `UPDATE memes SET upvotes = upvotes + 1 WHERE id = $1 RETURNING ` + memeColumns
	case model.Downvote:
		query = `UPDATE memes SET downvotes = downvotes + 1 WHERE id = $1 RETURNING ` + memeColumns
	default:
		return model.Meme{}, fmt.Errorf("increment votes for meme %s: unknown vote kind %q", memeID, kind)
	}

	meme, err := scanMeme(r.DB.QueryRowContext(ctx, query, memeID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Meme{}, fmt.Errorf("increment votes for meme %s: %w", memeID, marketerrors.ErrMemeNotFound)
	}
	if err != nil {
		return model.Meme{}, remoteErr("increment votes for meme "+memeID, err)
	}
	return meme, nil
}

// UpdateOwnership sets owner and price when version still equals expectedVersion.
func (r *PostgresRepo) UpdateOwnership(ctx context.Context, memeID string, expectedVersion int64, ownerID, ownerName string, price int) (model.Meme, error) {
	row := r.DB.QueryRowContext(ctx, `
		UPDATE memes SET owner_id = $1, owner_name = $2, price = $3, version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING `+memeColumns,
		ownerID, ownerName, price, memeID, expectedVersion)

	meme, err := scanMeme(row)
	if err == nil {
		return meme, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Meme{}, remoteErr("update ownership of meme "+memeID, err)
	}

	var exists bool
	if err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM memes WHERE id = $1)`, memeID).Scan(&exists); err != nil {
		return model.Meme{}, remoteErr("update ownership of meme "+memeID, err)
	}
	if !exists {
		return model.Meme{}, fmt.Errorf("update ownership of meme %s: %w", memeID, marketerrors.ErrMemeNotFound)
	}
	return model.Meme{}, fmt.Errorf("update ownership of meme %s: version %d: %w", memeID, expectedVersion, marketerrors.ErrStaleMeme)
}

// InsertBid appends a bid row. A bid for a missing meme fails the foreign key.
func (r *PostgresRepo) InsertBid(ctx context.Context, bid model.Bid) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO bids (id, meme_id, user_id, user_name, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, bid.BidID, bid.MemeID, bid.UserID, bid.UserName, bid.Amount, bid.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return fmt.Errorf("insert bid for meme %s: %w", bid.MemeID, marketerrors.ErrMemeNotFound)
		}
		return remoteErr("insert bid for meme "+bid.MemeID, err)
	}
	return nil
}

// ListTopBids returns at most limit bids for a meme ordered by amount descending.
// A non-positive limit returns all bids.
func (r *PostgresRepo) ListTopBids(ctx context.Context, memeID string, limit int) ([]model.Bid, error) {
	var lim sql.NullInt64
	if limit > 0 {
		lim = sql.NullInt64{Int64: int64(limit), Valid: true}
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, meme_id, user_id, user_name, amount, created_at
		FROM bids WHERE meme_id = $1
		ORDER BY amount DESC, created_at ASC, id ASC
		LIMIT $2
	`, memeID, lim)
	if err != nil {
		return nil, remoteErr("list bids for meme "+memeID, err)
	}
	defer rows.Close()

	bids := []model.Bid{}
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.BidID, &b.MemeID, &b.UserID, &b.UserName, &b.Amount, &b.CreatedAt); err != nil {
			return nil, remoteErr("scan bid", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr("list bids for meme "+memeID, err)
	}
	return bids, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func remoteErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, marketerrors.ErrRemoteFailure, err)
}
