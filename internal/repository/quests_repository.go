package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/pkg/entity"
)

// QuestsRepository reads the quest catalog. The catalog is maintained elsewhere, so there are no writes.
type QuestsRepository struct {
	conn PgConnection
}

func NewQuestsRepo(conn PgConnection) *QuestsRepository {
	return &QuestsRepository{
		conn: conn,
	}
}

func (qr *QuestsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quest, error) {
	quest := entity.Quest{ID: id}
	row := querier(ctx, qr.conn).QueryRow(ctx,
		`SELECT title, description, quest_type, category, points, is_active, order_index FROM quests WHERE id = $1;`, id)
	err := row.Scan(&quest.Title, &quest.Description, &quest.Type, &quest.Category, &quest.Points, &quest.IsActive, &quest.OrderIndex)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrQuestNotFound
		}
		return nil, storeErr("getting quest by id", err)
	}
	return &quest, nil
}

func (qr *QuestsRepository) ListActive(ctx context.Context) ([]entity.Quest, error) {
	rows, err := querier(ctx, qr.conn).Query(ctx, `SELECT id, title, description, quest_type, category, points, is_active, order_index
		FROM quests WHERE is_active ORDER BY quest_type, order_index, id;`)
	if err != nil {
		return nil, storeErr("listing active quests", err)
	}
	defer rows.Close()
	quests := make([]entity.Quest, 0)
	for rows.Next() {
		q := entity.Quest{}
		err = rows.Scan(&q.ID, &q.Title, &q.Description, &q.Type, &q.Category, &q.Points, &q.IsActive, &q.OrderIndex)
		if err != nil {
			return nil, storeErr("scanning quest", err)
		}
		quests = append(quests, q)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("iterating quests", err)
	}
	return quests, nil
}
