package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/agriquest/internal/repository/memory"
	"github.com/limbo/agriquest/internal/service"
	"github.com/limbo/agriquest/pkg/entity"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// day returns 09:00 UTC of the given March 2025 day. March 3rd 2025 is a Monday.
func day(d int) time.Time {
	return time.Date(2025, 3, d, 9, 0, 0, 0, time.UTC)
}

func newQuest(title string, qt entity.QuestType, category string) entity.Quest {
	return entity.Quest{
		ID:       uuid.New(),
		Title:    title,
		Type:     qt,
		Category: category,
		Points:   5,
		IsActive: true,
	}
}

func dailyQuests(n int, category string) []entity.Quest {
	quests := make([]entity.Quest, 0, n)
	for i := 0; i < n; i++ {
		q := newQuest(fmt.Sprintf("daily %d", i), entity.QuestDaily, category)
		q.OrderIndex = i
		quests = append(quests, q)
	}
	return quests
}

// stack wires the services over the in-memory store, the way main does for STORE_DRIVER=memory.
type stack struct {
	store       *memory.Store
	clock       *testClock
	ledger      *service.LedgerService
	credits     *service.CreditService
	badges      *service.BadgeService
	eligibility *service.EligibilityService
	uid         uuid.UUID
}

func newStack(t *testing.T, quests []entity.Quest, badges []entity.BadgeDefinition, lookbackDays int) *stack {
	t.Helper()
	store := memory.NewStore(quests)
	require.NoError(t, store.Create(context.Background(), &entity.User{Name: "farmer", PasswordHash: "hash"}))
	user, err := store.FindByName(context.Background(), "farmer")
	require.NoError(t, err)
	clock := newTestClock(day(3))
	opts := service.Options{Clock: clock, Logger: discardLogger}
	catalog := service.NewCatalogService(store, 16, time.Minute)
	credits := service.NewCreditService(store, store)
	return &stack{
		store:       store,
		clock:       clock,
		ledger:      service.NewLedgerService(store, catalog, store, credits, opts),
		credits:     credits,
		badges:      service.NewBadgeService(store, catalog, badges, lookbackDays, opts),
		eligibility: service.NewEligibilityService(credits, []entity.Scheme{{Code: "PM-KISAN", Name: "PM Kisan"}}, 100),
		uid:         user.ID,
	}
}

func (s *stack) completeOn(t *testing.T, at time.Time, questID uuid.UUID) *entity.CompletionResult {
	t.Helper()
	s.clock.Set(at)
	result, err := s.ledger.RecordCompletion(context.Background(), s.uid, questID)
	require.NoError(t, err)
	return result
}
