package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/agriquest/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new profile with zero credits. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type CatalogServiceI interface {
	// Returns active quest by id
	GetQuest(ctx context.Context, id uuid.UUID) (*entity.Quest, error)
	// Returns active quests ordered by type and order_index
	ActiveQuests(ctx context.Context) ([]entity.Quest, error)
}

type LedgerServiceI interface {
	// Marks quest completed for the current period and awards its points once
	RecordCompletion(ctx context.Context, uid, questID uuid.UUID) (*entity.CompletionResult, error)
	// Creates in_progress row for the current period if there is none
	StartQuest(ctx context.Context, uid, questID uuid.UUID) (*entity.QuestProgress, error)
	// Lists active quests with current period status. Empty questType means all types
	QuestBoard(ctx context.Context, uid uuid.UUID, questType entity.QuestType) ([]entity.QuestStatus, error)
}

type CreditServiceI interface {
	// Appends credit event and increments balance. Returns the new balance
	Award(ctx context.Context, uid uuid.UUID, amount int, progressID uuid.UUID) (int, error)
	GetBalance(ctx context.Context, uid uuid.UUID) (int, error)
	// Lists credit events newest first
	History(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.CreditEvent, error)
}

type BadgeServiceI interface {
	// Progress towards every configured badge
	GetBadgeProgress(ctx context.Context, uid uuid.UUID) ([]entity.BadgeProgress, error)
	// Badges with progress of 100%
	GetEarnedBadges(ctx context.Context, uid uuid.UUID) ([]entity.BadgeProgress, error)
	GetStreak(ctx context.Context, uid uuid.UUID) (entity.Streak, error)
}

type EligibilityServiceI interface {
	IsEligibleForSchemes(ctx context.Context, uid uuid.UUID) (bool, error)
	// Full scheme catalog for eligible users, empty list otherwise
	ListEligibleSchemes(ctx context.Context, uid uuid.UUID) ([]entity.Scheme, error)
	Threshold() int
}

type DashboardServiceI interface {
	Summary(ctx context.Context, uid uuid.UUID) (*entity.DashboardSummary, error)
}

type Clock interface {
	Now() time.Time
}
