package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/agriquest/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database with zero credits
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type QuestsRepositoryI interface {
	// Searches quest with given id regardless of its active flag
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quest, error)
	// Lists active quests ordered by type and order_index
	ListActive(ctx context.Context) ([]entity.Quest, error)
}

type ProgressRepositoryI interface {
	// Returns progress row for the period or nil if there is none
	Find(ctx context.Context, uid, questID uuid.UUID, periodKey time.Time) (*entity.QuestProgress, error)
	// Atomically marks the period row completed. Returns false if it was completed already
	CompleteOnce(ctx context.Context, progress *entity.QuestProgress) (bool, error)
	// Creates in_progress row if the period has none yet. Returns the current row
	Start(ctx context.Context, progress *entity.QuestProgress) (*entity.QuestProgress, error)
	// Lists completed rows since given moment, newest first
	ListCompleted(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.QuestProgress, error)
	// Lists rows of user with any of given period keys
	ListByPeriods(ctx context.Context, uid uuid.UUID, keys []time.Time) ([]entity.QuestProgress, error)
}

type CreditsRepositoryI interface {
	// Returns current balance of user
	GetCredits(ctx context.Context, uid uuid.UUID) (int, error)
	// Atomically increments balance, returns the new one
	AddCredits(ctx context.Context, uid uuid.UUID, amount int) (int, error)
	// Appends award event to the credit log
	AppendEvent(ctx context.Context, award entity.CreditAward) error
	// Lists credit events of user, newest first. Requires pagination params provided
	ListEvents(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.CreditEvent, error)
}

type TxRunner interface {
	// Runs fn in one transaction. Repositories called with the passed ctx join it
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type DBConfig interface {
	ConnString() string
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
