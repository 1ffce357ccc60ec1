package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var memeRowColumns = []string{
	"id", "title", "image_url", "tags", "upvotes", "downvotes", "owner_id", "owner_name",
	"price", "created_at", "ai_caption", "vibe_analysis", "version",
}

func setupMock(t *testing.T) (*PostgresRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to open sqlmock database")
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepo(db), mock
}

func TestPostgresRepo_ListMemes(t *testing.T) {
	repo, mock := setupMock(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(memeRowColumns).
		AddRow("m2", "Matrix Cat", "https://img/2", "{cat,matrix}", 128, 2, "system", "SYSTEM", 777, now, "I know kung-meow", "Digital Feline Override", int64(1)).
		AddRow("m1", "Cyber Doge", "https://img/1", "{}", 69, 4, "system", "SYSTEM", 420, now.Add(-time.Hour), nil, nil, int64(3))

	mock.ExpectQuery(regexp.QuoteMeta(`FROM memes ORDER BY created_at DESC, id DESC`)).WillReturnRows(rows)

	memes, err := repo.ListMemes(context.Background())
	require.NoError(t, err)
	require.Len(t, memes, 2)
	require.Equal(t, []string{"cat", "matrix"}, memes[0].Tags)
	require.Equal(t, "I know kung-meow", memes[0].AICaption)
	require.Equal(t, []string{}, memes[1].Tags)
	require.Empty(t, memes[1].AICaption)
	require.Equal(t, int64(3), memes[1].Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_ListMemes_Error(t *testing.T) {
	repo, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM memes`)).WillReturnError(errors.New("connection refused"))

	_, err := repo.ListMemes(context.Background())
	require.True(t, errors.Is(err, marketerrors.ErrRemoteFailure), "got %v", err)
}

func TestPostgresRepo_GetMeme(t *testing.T) {
	now := time.Now().UTC()
	getSQL := regexp.QuoteMeta(`FROM memes WHERE id = $1`)

	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(getSQL).WithArgs("m1").
					WillReturnRows(sqlmock.NewRows(memeRowColumns).
						AddRow("m1", "t", "u", "{doge}", 3, 1, "buyer", "Buyer", 250, now, nil, nil, int64(4)))
			},
		},
		{
			name: "not_found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(getSQL).WithArgs("m1").WillReturnError(sql.ErrNoRows)
			},
			expectedError: marketerrors.ErrMemeNotFound,
		},
		{
			name: "connection_error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(getSQL).WithArgs("m1").WillReturnError(errors.New("connection reset"))
			},
			expectedError: marketerrors.ErrRemoteFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupMock(t)
			tt.mockSetup(mock)

			meme, err := repo.GetMeme(context.Background(), "m1")
			if tt.expectedError != nil {
				require.True(t, errors.Is(err, tt.expectedError), "got %v", err)
			} else {
				require.NoError(t, err)
				require.Equal(t, 250, meme.Price)
				require.Equal(t, int64(4), meme.Version)
				require.Equal(t, []string{"doge"}, meme.Tags)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepo_InsertMeme(t *testing.T) {
	repo, mock := setupMock(t)
	now := time.Now().UTC()
	meme := model.Meme{
		MemeID: "m1", Title: "Cyber Doge", ImageURL: "https://img/1", Tags: []string{"doge"},
		OwnerID: "u1", OwnerName: "CyberNinja", Price: 100, CreatedAt: now,
		AICaption: "Such cyber, very neon, wow matrix", Version: 1,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO memes`)).
		WithArgs("m1", "Cyber Doge", "https://img/1", sqlmock.AnyArg(), 0, 0, "u1", "CyberNinja", 100, now,
			"Such cyber, very neon, wow matrix", nil, int64(1)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.InsertMeme(context.Background(), meme))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_IncrementVotes(t *testing.T) {
	now := time.Now().UTC()

	t.Run("upvote", func(t *testing.T) {
		repo, mock := setupMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE memes SET upvotes = upvotes + 1 WHERE id = $1`)).
			WithArgs("m1").
			WillReturnRows(sqlmock.NewRows(memeRowColumns).
				AddRow("m1", "t", "u", "{doge}", 70, 4, "o", "O", 420, now, nil, nil, int64(1)))

		meme, err := repo.IncrementVotes(context.Background(), "m1", model.Upvote)
		require.NoError(t, err)
		require.Equal(t, 70, meme.Upvotes)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("downvote_not_found", func(t *testing.T) {
		repo, mock := setupMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE memes SET downvotes = downvotes + 1 WHERE id = $1`)).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.IncrementVotes(context.Background(), "missing", model.Downvote)
		require.True(t, errors.Is(err, marketerrors.ErrMemeNotFound), "got %v", err)
	})
}

func TestPostgresRepo_UpdateOwnership(t *testing.T) {
	now := time.Now().UTC()
	updateSQL := regexp.QuoteMeta(`UPDATE memes SET owner_id = $1, owner_name = $2, price = $3, version = version + 1`)
	existsSQL := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM memes WHERE id = $1)`)

	t.Run("success", func(t *testing.T) {
		repo, mock := setupMock(t)
		mock.ExpectQuery(updateSQL).
			WithArgs("buyer", "Buyer", 200, "m1", int64(1)).
			WillReturnRows(sqlmock.NewRows(memeRowColumns).
				AddRow("m1", "t", "u", "{}", 0, 0, "buyer", "Buyer", 200, now, nil, nil, int64(2)))

		meme, err := repo.UpdateOwnership(context.Background(), "m1", 1, "buyer", "Buyer", 200)
		require.NoError(t, err)
		require.Equal(t, "buyer", meme.OwnerID)
		require.Equal(t, int64(2), meme.Version)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale_version", func(t *testing.T) {
		repo, mock := setupMock(t)
		mock.ExpectQuery(updateSQL).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(existsSQL).WithArgs("m1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		_, err := repo.UpdateOwnership(context.Background(), "m1", 1, "buyer", "Buyer", 200)
		require.True(t, errors.Is(err, marketerrors.ErrStaleMeme), "got %v", err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found", func(t *testing.T) {
		repo, mock := setupMock(t)
		mock.ExpectQuery(updateSQL).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(existsSQL).WithArgs("m1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := repo.UpdateOwnership(context.Background(), "m1", 1, "buyer", "Buyer", 200)
		require.True(t, errors.Is(err, marketerrors.ErrMemeNotFound), "got %v", err)
	})
}

func TestPostgresRepo_InsertBid(t *testing.T) {
	now := time.Now().UTC()
	bid := model.Bid{BidID: "b1", MemeID: "m1", UserID: "u1", UserName: "CyberNinja", Amount: 150, CreatedAt: now}

	t.Run("success", func(t *testing.T) {
		repo, mock := setupMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bids (id, meme_id, user_id, user_name, amount, created_at)`)).
			WithArgs("b1", "m1", "u1", "CyberNinja", 150, now).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.InsertBid(context.Background(), bid))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing_meme", func(t *testing.T) {
		repo, mock := setupMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bids`)).
			WillReturnError(&pq.Error{Code: foreignKeyViolation})

		err := repo.InsertBid(context.Background(), bid)
		require.True(t, errors.Is(err, marketerrors.ErrMemeNotFound), "got %v", err)
	})

	t.Run("write_rejected", func(t *testing.T) {
		repo, mock := setupMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bids`)).
			WillReturnError(errors.New("disk full"))

		err := repo.InsertBid(context.Background(), bid)
		require.True(t, errors.Is(err, marketerrors.ErrRemoteFailure), "got %v", err)
	})
}

func TestPostgresRepo_ListTopBids(t *testing.T) {
	repo, mock := setupMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY amount DESC, created_at ASC, id ASC`)).
		WithArgs("m1", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "meme_id", "user_id", "user_name", "amount", "created_at"}).
			AddRow("b2", "m1", "u2", "NeonHacker", 300, now).
			AddRow("b1", "m1", "u1", "CyberNinja", 150, now))

	bids, err := repo.ListTopBids(context.Background(), "m1", 5)
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, 300, bids[0].Amount)
	require.NoError(t, mock.ExpectationsWereMet())
}
