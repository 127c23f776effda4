package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/pkg/entity"
)

// CreditsRepository keeps the credits column of users and the credit_events log it is projected from.
type CreditsRepository struct {
	conn PgConnection
}

func NewCreditsRepo(conn PgConnection) *CreditsRepository {
	return &CreditsRepository{
		conn: conn,
	}
}

func (cr *CreditsRepository) GetCredits(ctx context.Context, uid uuid.UUID) (int, error) {
	var credits int
	row := querier(ctx, cr.conn).QueryRow(ctx, `SELECT credits FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&credits); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, storeErr("getting credits", err)
	}
	return credits, nil
}

func (cr *CreditsRepository) AddCredits(ctx context.Context, uid uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, errorvalues.ErrInvalidAmount
	}
	var credits int
	row := querier(ctx, cr.conn).QueryRow(ctx, `UPDATE users SET credits = credits + $1 WHERE id = $2 RETURNING credits;`, amount, uid)
	if err := row.Scan(&credits); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, storeErr("adding credits", err)
	}
	return credits, nil
}

func (cr *CreditsRepository) AppendEvent(ctx context.Context, award entity.CreditAward) error {
	_, err := querier(ctx, cr.conn).Exec(ctx,
		`INSERT INTO credit_events (user_id, progress_id, amount) VALUES ($1, $2, $3);`,
		award.UserID,
		award.ProgressID,
		award.Amount,
	)
	if err != nil {
		if pgErr, ok := asPgError(err); ok {
			switch pgErr.Code {
			// One award per progress row
			case pgUniqueViolation:
				return storeErr("appending credit event", errors.New("progress already awarded"))
			case pgFKViolation:
				return errorvalues.ErrUserNotFound
			}
		}
		return storeErr("appending credit event", err)
	}
	return nil
}

func (cr *CreditsRepository) ListEvents(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.CreditEvent, error) {
	rows, err := querier(ctx, cr.conn).Query(ctx, `SELECT id, user_id, progress_id, amount, created_at
		FROM credit_events WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, storeErr("listing credit events", err)
	}
	defer rows.Close()
	events := make([]entity.CreditEvent, 0)
	for rows.Next() {
		e := entity.CreditEvent{}
		if err = rows.Scan(&e.ID, &e.UserID, &e.ProgressID, &e.Amount, &e.CreatedAt); err != nil {
			return nil, storeErr("credit event parsing", err)
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("iterating credit events", err)
	}
	return events, nil
}
