package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/pkg/entity"
)

const progressColumns = `p.id, p.user_id, p.quest_id, p.status, p.completed_at, p.date_assigned, p.week_start, p.period_key, q.quest_type, q.category`

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(conn PgConnection) *ProgressRepository {
	return &ProgressRepository{
		conn: conn,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgress(row scanner) (*entity.QuestProgress, error) {
	p := entity.QuestProgress{}
	err := row.Scan(&p.ID, &p.UserID, &p.QuestID, &p.Status, &p.CompletedAt, &p.DateAssigned,
		&p.WeekStart, &p.PeriodKey, &p.QuestType, &p.Category)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (pr *ProgressRepository) Find(ctx context.Context, uid, questID uuid.UUID, periodKey time.Time) (*entity.QuestProgress, error) {
	row := querier(ctx, pr.conn).QueryRow(ctx, `SELECT `+progressColumns+`
		FROM quest_progress p JOIN quests q ON q.id = p.quest_id
		WHERE p.user_id = $1 AND p.quest_id = $2 AND p.period_key = $3;`,
		uid,
		questID,
		periodKey,
	)
	progress, err := scanProgress(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("searching progress", err)
	}
	return progress, nil
}

// CompleteOnce relies on the (user_id, quest_id, period_key) unique key: concurrent callers
// serialize on the row and only the one that flips the status gets it back from RETURNING.
func (pr *ProgressRepository) CompleteOnce(ctx context.Context, progress *entity.QuestProgress) (bool, error) {
	completedAt := time.Now()
	if progress.CompletedAt != nil {
		completedAt = *progress.CompletedAt
	}
	row := querier(ctx, pr.conn).QueryRow(ctx,
		`INSERT INTO quest_progress (user_id, quest_id, status, completed_at, date_assigned, week_start, period_key)
		VALUES ($1, $2, 'completed', $3, $4, $5, $6)
		ON CONFLICT (user_id, quest_id, period_key) DO UPDATE
		SET status = 'completed', completed_at = EXCLUDED.completed_at
		WHERE quest_progress.status <> 'completed'
		RETURNING id, date_assigned;`,
		progress.UserID,
		progress.QuestID,
		completedAt,
		progress.DateAssigned,
		progress.WeekStart,
		progress.PeriodKey,
	)
	var id uuid.UUID
	var dateAssigned time.Time
	if err := row.Scan(&id, &dateAssigned); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgFKViolation {
			if strings.Contains(pgErr.ConstraintName, "user_id") {
				return false, errorvalues.ErrUserNotFound
			}
			return false, errorvalues.ErrQuestNotFound
		}
		return false, storeErr("completing progress", err)
	}
	progress.ID = id
	progress.Status = entity.StatusCompleted
	progress.CompletedAt = &completedAt
	progress.DateAssigned = dateAssigned
	return true, nil
}

func (pr *ProgressRepository) Start(ctx context.Context, progress *entity.QuestProgress) (*entity.QuestProgress, error) {
	_, err := querier(ctx, pr.conn).Exec(ctx,
		`INSERT INTO quest_progress (user_id, quest_id, status, date_assigned, week_start, period_key)
		VALUES ($1, $2, 'in_progress', $3, $4, $5)
		ON CONFLICT (user_id, quest_id, period_key) DO NOTHING;`,
		progress.UserID,
		progress.QuestID,
		progress.DateAssigned,
		progress.WeekStart,
		progress.PeriodKey,
	)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgFKViolation {
			if strings.Contains(pgErr.ConstraintName, "user_id") {
				return nil, errorvalues.ErrUserNotFound
			}
			return nil, errorvalues.ErrQuestNotFound
		}
		return nil, storeErr("starting progress", err)
	}
	current, err := pr.Find(ctx, progress.UserID, progress.QuestID, progress.PeriodKey)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, storeErr("starting progress", errors.New("row vanished after insert"))
	}
	return current, nil
}

func (pr *ProgressRepository) ListCompleted(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.QuestProgress, error) {
	rows, err := querier(ctx, pr.conn).Query(ctx, `SELECT `+progressColumns+`
		FROM quest_progress p JOIN quests q ON q.id = p.quest_id
		WHERE p.user_id = $1 AND p.status = 'completed' AND p.completed_at >= $2
		ORDER BY p.completed_at DESC;`,
		uid,
		since,
	)
	if err != nil {
		return nil, storeErr("listing completed progress", err)
	}
	return collectProgress(rows)
}

func (pr *ProgressRepository) ListByPeriods(ctx context.Context, uid uuid.UUID, keys []time.Time) ([]entity.QuestProgress, error) {
	if len(keys) == 0 {
		return []entity.QuestProgress{}, nil
	}
	rows, err := querier(ctx, pr.conn).Query(ctx, `SELECT `+progressColumns+`
		FROM quest_progress p JOIN quests q ON q.id = p.quest_id
		WHERE p.user_id = $1 AND p.period_key = ANY($2);`,
		uid,
		keys,
	)
	if err != nil {
		return nil, storeErr("listing progress by periods", err)
	}
	return collectProgress(rows)
}

func collectProgress(rows pgx.Rows) ([]entity.QuestProgress, error) {
	defer rows.Close()
	result := make([]entity.QuestProgress, 0, 8)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, storeErr("progress row parsing", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating progress rows", err)
	}
	return result, nil
}
