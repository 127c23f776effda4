package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/pkg/entity"
)

const dateLayout = "2006-01-02"

type progressKey struct {
	userID  uuid.UUID
	questID uuid.UUID
	period  string
}

func keyOf(uid, questID uuid.UUID, periodKey time.Time) progressKey {
	return progressKey{userID: uid, questID: questID, period: periodKey.Format(dateLayout)}
}

// Store keeps users, the quest catalog, progress rows and credit events in process memory.
// Transactions run one at a time; writes made inside one are undone when it fails.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	users       map[uuid.UUID]entity.User
	names       map[string]uuid.UUID
	quests      map[uuid.UUID]entity.Quest
	progress    map[progressKey]entity.QuestProgress
	events      []entity.CreditEvent
	awarded     map[uuid.UUID]struct{}
	nextEventID int64
}

func NewStore(quests []entity.Quest) *Store {
	s := &Store{
		users:    make(map[uuid.UUID]entity.User),
		names:    make(map[string]uuid.UUID),
		quests:   make(map[uuid.UUID]entity.Quest, len(quests)),
		progress: make(map[progressKey]entity.QuestProgress),
		events:   make([]entity.CreditEvent, 0),
		awarded:  make(map[uuid.UUID]struct{}),
	}
	for _, q := range quests {
		s.quests[q.ID] = q
	}
	return s
}

// SeedQuest adds or replaces a catalog entry.
func (s *Store) SeedQuest(q entity.Quest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quests[q.ID] = q
}

type txKey struct{}

type journal struct {
	undo []func()
}

func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*journal); ok {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: beginning transaction error: %w", errorvalues.ErrStore, err)
	}
	j := &journal{}
	if err := fn(context.WithValue(ctx, txKey{}, j)); err != nil {
		s.mu.Lock()
		for i := len(j.undo) - 1; i >= 0; i-- {
			j.undo[i]()
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

// record must be called with mu held.
func record(ctx context.Context, undo func()) {
	if j, ok := ctx.Value(txKey{}).(*journal); ok {
		j.undo = append(j.undo, undo)
	}
}

func (s *Store) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return fmt.Errorf("user is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.names[user.Name]; ok {
		return errorvalues.ErrUserExists
	}
	id := user.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	s.users[id] = entity.User{ID: id, Name: user.Name, PasswordHash: user.PasswordHash}
	s.names[user.Name] = id
	name := user.Name
	record(ctx, func() {
		delete(s.users, id)
		delete(s.names, name)
	})
	return nil
}

func (s *Store) FindByName(_ context.Context, name string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.names[name]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (s *Store) FindByID(_ context.Context, uid uuid.UUID) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return &user, nil
}

func (s *Store) Delete(ctx context.Context, uid uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[uid]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	delete(s.users, uid)
	delete(s.names, user.Name)
	removedProgress := make(map[progressKey]entity.QuestProgress)
	for k, p := range s.progress {
		if k.userID == uid {
			removedProgress[k] = p
			delete(s.progress, k)
		}
	}
	keptEvents := s.events[:0:0]
	removedEvents := make([]entity.CreditEvent, 0)
	for _, e := range s.events {
		if e.UserID == uid {
			removedEvents = append(removedEvents, e)
			delete(s.awarded, e.ProgressID)
			continue
		}
		keptEvents = append(keptEvents, e)
	}
	s.events = keptEvents
	record(ctx, func() {
		s.users[uid] = user
		s.names[user.Name] = uid
		for k, p := range removedProgress {
			s.progress[k] = p
		}
		for _, e := range removedEvents {
			s.awarded[e.ProgressID] = struct{}{}
		}
		s.events = append(s.events, removedEvents...)
	})
	return nil
}

func (s *Store) GetByID(_ context.Context, id uuid.UUID) (*entity.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quests[id]
	if !ok {
		return nil, errorvalues.ErrQuestNotFound
	}
	return &q, nil
}

func (s *Store) ListActive(_ context.Context) ([]entity.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quests := make([]entity.Quest, 0, len(s.quests))
	for _, q := range s.quests {
		if q.IsActive {
			quests = append(quests, q)
		}
	}
	sort.Slice(quests, func(i, j int) bool {
		if quests[i].Type != quests[j].Type {
			return quests[i].Type < quests[j].Type
		}
		if quests[i].OrderIndex != quests[j].OrderIndex {
			return quests[i].OrderIndex < quests[j].OrderIndex
		}
		return quests[i].ID.String() < quests[j].ID.String()
	})
	return quests, nil
}

// joined must be called with mu held.
func (s *Store) joined(p entity.QuestProgress) entity.QuestProgress {
	if q, ok := s.quests[p.QuestID]; ok {
		p.QuestType = q.Type
		p.Category = q.Category
	}
	return p
}

// checkRefs must be called with mu held.
func (s *Store) checkRefs(uid, questID uuid.UUID) error {
	if _, ok := s.users[uid]; !ok {
		return errorvalues.ErrUserNotFound
	}
	if _, ok := s.quests[questID]; !ok {
		return errorvalues.ErrQuestNotFound
	}
	return nil
}

func (s *Store) Find(_ context.Context, uid, questID uuid.UUID, periodKey time.Time) (*entity.QuestProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.progress[keyOf(uid, questID, periodKey)]
	if !ok {
		return nil, nil
	}
	p = s.joined(p)
	return &p, nil
}

func (s *Store) CompleteOnce(ctx context.Context, progress *entity.QuestProgress) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkRefs(progress.UserID, progress.QuestID); err != nil {
		return false, err
	}
	key := keyOf(progress.UserID, progress.QuestID, progress.PeriodKey)
	prev, existed := s.progress[key]
	if existed && prev.Status == entity.StatusCompleted {
		return false, nil
	}
	completedAt := time.Now()
	if progress.CompletedAt != nil {
		completedAt = *progress.CompletedAt
	}
	row := prev
	if !existed {
		row = entity.QuestProgress{
			ID:           uuid.New(),
			UserID:       progress.UserID,
			QuestID:      progress.QuestID,
			DateAssigned: progress.DateAssigned,
			WeekStart:    progress.WeekStart,
			PeriodKey:    progress.PeriodKey,
		}
	}
	row.Status = entity.StatusCompleted
	row.CompletedAt = &completedAt
	s.progress[key] = row
	record(ctx, func() {
		if existed {
			s.progress[key] = prev
			return
		}
		delete(s.progress, key)
	})
	progress.ID = row.ID
	progress.Status = row.Status
	progress.CompletedAt = row.CompletedAt
	progress.DateAssigned = row.DateAssigned
	return true, nil
}

func (s *Store) Start(ctx context.Context, progress *entity.QuestProgress) (*entity.QuestProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkRefs(progress.UserID, progress.QuestID); err != nil {
		return nil, err
	}
	key := keyOf(progress.UserID, progress.QuestID, progress.PeriodKey)
	row, ok := s.progress[key]
	if !ok {
		row = entity.QuestProgress{
			ID:           uuid.New(),
			UserID:       progress.UserID,
			QuestID:      progress.QuestID,
			Status:       entity.StatusInProgress,
			DateAssigned: progress.DateAssigned,
			WeekStart:    progress.WeekStart,
			PeriodKey:    progress.PeriodKey,
		}
		s.progress[key] = row
		record(ctx, func() {
			delete(s.progress, key)
		})
	}
	row = s.joined(row)
	return &row, nil
}

func (s *Store) ListCompleted(_ context.Context, uid uuid.UUID, since time.Time) ([]entity.QuestProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]entity.QuestProgress, 0)
	for k, p := range s.progress {
		if k.userID != uid || p.Status != entity.StatusCompleted || p.CompletedAt == nil || p.CompletedAt.Before(since) {
			continue
		}
		result = append(result, s.joined(p))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CompletedAt.After(*result[j].CompletedAt)
	})
	return result, nil
}

func (s *Store) ListByPeriods(_ context.Context, uid uuid.UUID, keys []time.Time) ([]entity.QuestProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		wanted[k.Format(dateLayout)] = struct{}{}
	}
	result := make([]entity.QuestProgress, 0)
	for k, p := range s.progress {
		if k.userID != uid {
			continue
		}
		if _, ok := wanted[k.period]; ok {
			result = append(result, s.joined(p))
		}
	}
	return result, nil
}

func (s *Store) GetCredits(_ context.Context, uid uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[uid]
	if !ok {
		return 0, errorvalues.ErrUserNotFound
	}
	return user.Credits, nil
}

func (s *Store) AddCredits(ctx context.Context, uid uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, errorvalues.ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[uid]
	if !ok {
		return 0, errorvalues.ErrUserNotFound
	}
	user.Credits += amount
	s.users[uid] = user
	record(ctx, func() {
		u := s.users[uid]
		u.Credits -= amount
		s.users[uid] = u
	})
	return user.Credits, nil
}

func (s *Store) AppendEvent(ctx context.Context, award entity.CreditAward) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[award.UserID]; !ok {
		return errorvalues.ErrUserNotFound
	}
	if _, ok := s.awarded[award.ProgressID]; ok {
		return fmt.Errorf("%w: appending credit event error: progress already awarded", errorvalues.ErrStore)
	}
	s.nextEventID++
	event := entity.CreditEvent{
		ID:         s.nextEventID,
		UserID:     award.UserID,
		ProgressID: award.ProgressID,
		Amount:     award.Amount,
		CreatedAt:  time.Now(),
	}
	s.events = append(s.events, event)
	s.awarded[award.ProgressID] = struct{}{}
	record(ctx, func() {
		delete(s.awarded, event.ProgressID)
		for i := len(s.events) - 1; i >= 0; i-- {
			if s.events[i].ID == event.ID {
				s.events = append(s.events[:i], s.events[i+1:]...)
				break
			}
		}
	})
	return nil
}

func (s *Store) ListEvents(_ context.Context, uid uuid.UUID, limit, offset int) ([]entity.CreditEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]entity.CreditEvent, 0)
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].UserID == uid {
			all = append(all, s.events[i])
		}
	}
	if offset >= len(all) {
		return []entity.CreditEvent{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}
