package entity

import (
	"time"

	"github.com/google/uuid"
)

type QuestType string

const (
	QuestDaily   QuestType = "daily"
	QuestWeekly  QuestType = "weekly"
	QuestSpecial QuestType = "special"
)

func (qt QuestType) Valid() bool {
	switch qt {
	case QuestDaily, QuestWeekly, QuestSpecial:
		return true
	}
	return false
}

type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
)

// User is a profile; Credits is the embedded credit account balance.
type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	Credits      int
}

type Quest struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	Type        QuestType `json:"quest_type"`
	Category    string    `json:"category"`
	Points      int       `json:"points"`
	IsActive    bool      `json:"is_active"`
	OrderIndex  int       `json:"order_index"`
}

type QuestProgress struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"uid"`
	QuestID      uuid.UUID      `json:"quest_id"`
	Status       ProgressStatus `json:"status"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	DateAssigned time.Time      `json:"date_assigned"`
	WeekStart    *time.Time     `json:"week_start,omitempty"`
	PeriodKey    time.Time      `json:"period_key"`
	// Joined from the quest catalog on reads.
	QuestType QuestType `json:"quest_type,omitempty"`
	Category  string    `json:"category,omitempty"`
}

func (p *QuestProgress) Completed() bool {
	return p != nil && p.Status == StatusCompleted
}

type CompletionResult struct {
	QuestID          uuid.UUID      `json:"quest_id"`
	Progress         *QuestProgress `json:"progress"`
	Awarded          int            `json:"awarded"`
	Balance          int            `json:"balance"`
	AlreadyCompleted bool           `json:"already_completed"`
}

// QuestStatus is a quest board row: the quest plus the user's state in the current period.
type QuestStatus struct {
	Quest     Quest          `json:"quest"`
	Status    ProgressStatus `json:"status"`
	Completed bool           `json:"completed"`
	PeriodKey time.Time      `json:"period_key"`
}

type CreditAward struct {
	UserID     uuid.UUID
	ProgressID uuid.UUID
	Amount     int
}

type CreditEvent struct {
	ID         int64     `json:"id"`
	UserID     uuid.UUID `json:"uid"`
	ProgressID uuid.UUID `json:"progress_id"`
	Amount     int       `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

type BadgeKind string

const (
	BadgeCompletions    BadgeKind = "completions"
	BadgeWeeklyChampion BadgeKind = "weekly_champion"
	BadgeStreak         BadgeKind = "streak"
)

type BadgeDefinition struct {
	Name          string    `yaml:"name" validate:"required"`
	Description   string    `yaml:"description"`
	Kind          BadgeKind `yaml:"kind" validate:"omitempty,oneof=completions weekly_champion streak"`
	RequiredCount int       `yaml:"required_count" validate:"required,min=1"`
	Category      string    `yaml:"category"`
	QuestType     QuestType `yaml:"quest_type" validate:"omitempty,oneof=daily weekly special"`
}

type BadgeProgress struct {
	BadgeName          string  `json:"badge_name"`
	Description        string  `json:"description"`
	CurrentCount       int     `json:"current_count"`
	RequiredCount      int     `json:"required_count"`
	ProgressPercentage float64 `json:"progress_percentage"`
	Earned             bool    `json:"earned"`
}

type Streak struct {
	Current         int        `json:"current"`
	Longest         int        `json:"longest"`
	LastCompletedOn *time.Time `json:"last_completed_on,omitempty"`
}

type Scheme struct {
	Code        string `yaml:"code" json:"code" validate:"required"`
	Name        string `yaml:"name" json:"name" validate:"required"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link" json:"link" validate:"omitempty,url"`
}

type DashboardSummary struct {
	UserID       uuid.UUID       `json:"uid"`
	Balance      int             `json:"balance"`
	Eligible     bool            `json:"eligible"`
	SchemesCount int             `json:"schemes_count"`
	Streak       Streak          `json:"streak"`
	EarnedCount  int             `json:"earned_count"`
	Badges       []BadgeProgress `json:"badges"`
}
