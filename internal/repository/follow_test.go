package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Toggle(t *testing.T) {
	ctx := context.Background()

	t.Run("Follow When Absent", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO follows`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "followers"=followers + $1`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "following"=following + $1`)).
			WithArgs(1, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		following, err := repo.Toggle(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, following)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unfollow When Present", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO follows`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM follows`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "followers"=followers + $1`)).
			WithArgs(-1, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "following"=following + $1`)).
			WithArgs(-1, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		following, err := repo.Toggle(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, following)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	// A concurrent unfollow can remove the edge between our conflicting
	// insert and our delete. The losing side must not touch either counter.
	t.Run("Unfollow Lost Race Leaves Counters Alone", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO follows`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM follows`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		following, err := repo.Toggle(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, following)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowRepository_IsFollowing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "follows" WHERE follower_id = $1 AND following_id = $2`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	following, err := repo.IsFollowing(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, following)
	assert.NoError(t, mock.ExpectationsWereMet())
}
