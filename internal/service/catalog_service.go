package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"

	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/internal/repository"
	"github.com/limbo/agriquest/pkg/entity"
)

const (
	defaultCatalogCacheSize = 256
	activeQuestsKey         = "quests:active"
)

type cachedEntry struct {
	value    any
	cachedAt time.Time
}

// CatalogService is a read-through cache over the quest catalog.
// Concurrent misses for the same key share one repository call.
type CatalogService struct {
	repo  repository.QuestsRepositoryI
	cache *lru.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewCatalogService caches up to size entries for ttl. Non-positive ttl keeps entries until evicted.
func NewCatalogService(repo repository.QuestsRepositoryI, size int, ttl time.Duration) *CatalogService {
	if size <= 0 {
		size = defaultCatalogCacheSize
	}
	cache, _ := lru.New(size)
	return &CatalogService{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

func (cs *CatalogService) lookup(key string) (any, bool) {
	cached, ok := cs.cache.Get(key)
	if !ok {
		return nil, false
	}
	entry, ok := cached.(cachedEntry)
	if !ok {
		return nil, false
	}
	if cs.ttl > 0 && time.Since(entry.cachedAt) >= cs.ttl {
		cs.cache.Remove(key)
		return nil, false
	}
	return entry.value, true
}

func (cs *CatalogService) load(key string, fn func() (any, error)) (any, error) {
	if v, ok := cs.lookup(key); ok {
		return v, nil
	}
	v, err, _ := cs.group.Do(key, func() (any, error) {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		cs.cache.Add(key, cachedEntry{value: v, cachedAt: time.Now()})
		return v, nil
	})
	return v, err
}

func (cs *CatalogService) GetQuest(ctx context.Context, id uuid.UUID) (*entity.Quest, error) {
	v, err := cs.load("quest:"+id.String(), func() (any, error) {
		return cs.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	quest := *(v.(*entity.Quest))
	if !quest.IsActive {
		return nil, errorvalues.ErrQuestNotFound
	}
	return &quest, nil
}

func (cs *CatalogService) ActiveQuests(ctx context.Context) ([]entity.Quest, error) {
	v, err := cs.load(activeQuestsKey, func() (any, error) {
		return cs.repo.ListActive(ctx)
	})
	if err != nil {
		return nil, err
	}
	quests := v.([]entity.Quest)
	result := make([]entity.Quest, len(quests))
	copy(result, quests)
	return result, nil
}
