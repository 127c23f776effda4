package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/internal/repository"
	"github.com/limbo/agriquest/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCredits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCreditsRepo(mock)
	query := regexp.QuoteMeta(`SELECT credits FROM users WHERE id = $1;`)
	uid := uuid.New()
	ctx := context.Background()
	t.Run("balance", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid).WillReturnRows(pgxmock.NewRows([]string{"credits"}).AddRow(95))
		credits, err := repo.GetCredits(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, 95, credits)
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetCredits(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetCredits(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrStore)
		assert.ErrorContains(t, err, "getting credits error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCredits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCreditsRepo(mock)
	query := regexp.QuoteMeta(`UPDATE users SET credits = credits + $1 WHERE id = $2 RETURNING credits;`)
	uid := uuid.New()
	ctx := context.Background()
	testCases := []struct {
		Desc        string
		Amount      int
		Balance     int
		Error       error
		PrepareMock func()
	}{
		{
			Desc:    "incremented",
			Amount:  5,
			Balance: 100,
			PrepareMock: func() {
				mock.ExpectQuery(query).WithArgs(5, uid).WillReturnRows(pgxmock.NewRows([]string{"credits"}).AddRow(100))
			},
		},
		{
			Desc:        "zero amount",
			Amount:      0,
			Error:       errorvalues.ErrInvalidAmount,
			PrepareMock: func() {},
		},
		{
			Desc:        "negative amount",
			Amount:      -5,
			Error:       errorvalues.ErrInvalidAmount,
			PrepareMock: func() {},
		},
		{
			Desc:   "unknown user",
			Amount: 5,
			Error:  errorvalues.ErrUserNotFound,
			PrepareMock: func() {
				mock.ExpectQuery(query).WithArgs(5, uid).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:   "db error",
			Amount: 5,
			Error:  errorvalues.ErrStore,
			PrepareMock: func() {
				mock.ExpectQuery(query).WithArgs(5, uid).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.PrepareMock()
			balance, err := repo.AddCredits(ctx, uid, tc.Amount)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Balance, balance)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendEvent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCreditsRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO credit_events (user_id, progress_id, amount) VALUES ($1, $2, $3);`)
	award := entity.CreditAward{
		UserID:     uuid.New(),
		ProgressID: uuid.New(),
		Amount:     5,
	}
	ctx := context.Background()
	t.Run("appended", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(award.UserID, award.ProgressID, award.Amount).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.AppendEvent(ctx, award))
	})
	t.Run("progress awarded twice", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(award.UserID, award.ProgressID, award.Amount).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		err := repo.AppendEvent(ctx, award)
		assert.ErrorIs(t, err, errorvalues.ErrStore)
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(award.UserID, award.ProgressID, award.Amount).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.AppendEvent(ctx, award)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEvents(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCreditsRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, progress_id, amount, created_at
		FROM credit_events WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3;`)
	uid := uuid.New()
	now := time.Now()
	ctx := context.Background()
	t.Run("page", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid, 2, 0).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "progress_id", "amount", "created_at"}).
				AddRow(int64(2), uid, uuid.New(), 5, now).
				AddRow(int64(1), uid, uuid.New(), 5, now.Add(-time.Hour)))
		events, err := repo.ListEvents(ctx, uid, 2, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, int64(2), events[0].ID)
		assert.Equal(t, 5, events[1].Amount)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid, 2, 0).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListEvents(ctx, uid, 2, 0)
		assert.ErrorIs(t, err, errorvalues.ErrStore)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
