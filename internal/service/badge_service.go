package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/internal/repository"
	"github.com/limbo/agriquest/pkg/entity"
)

const defaultStreakLookbackDays = 365

// BadgeService derives badges and streaks from completed progress rows on every read.
type BadgeService struct {
	progress     repository.ProgressRepositoryI
	catalog      CatalogServiceI
	badges       []entity.BadgeDefinition
	lookbackDays int
	opts         Options
}

func NewBadgeService(progressRepo repository.ProgressRepositoryI, catalog CatalogServiceI,
	badges []entity.BadgeDefinition, lookbackDays int, opts Options) *BadgeService {
	if lookbackDays <= 0 {
		lookbackDays = defaultStreakLookbackDays
	}
	return &BadgeService{
		progress:     progressRepo,
		catalog:      catalog,
		badges:       badges,
		lookbackDays: lookbackDays,
		opts:         opts.withDefaults(),
	}
}

func (bs *BadgeService) GetBadgeProgress(ctx context.Context, uid uuid.UUID) ([]entity.BadgeProgress, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	rows, err := bs.progress.ListCompleted(ctx, uid, time.Time{})
	if err != nil {
		return nil, err
	}
	var weekly []uuid.UUID
	if bs.hasKind(entity.BadgeWeeklyChampion) {
		quests, err := bs.catalog.ActiveQuests(ctx)
		if err != nil {
			return nil, err
		}
		for _, q := range quests {
			if q.Type == entity.QuestWeekly {
				weekly = append(weekly, q.ID)
			}
		}
	}
	today := DayOf(bs.opts.Clock.Now(), bs.opts.Location)
	var streak *entity.Streak
	result := make([]entity.BadgeProgress, 0, len(bs.badges))
	for _, def := range bs.badges {
		var current int
		switch def.Kind {
		case entity.BadgeWeeklyChampion:
			current = championWeeks(rows, weekly)
		case entity.BadgeStreak:
			if streak == nil {
				s := computeStreak(rows, today, bs.lookbackDays)
				streak = &s
			}
			current = streak.Longest
		default:
			current = countCompletions(rows, def)
		}
		result = append(result, newBadgeProgress(def, current))
	}
	return result, nil
}

func (bs *BadgeService) GetEarnedBadges(ctx context.Context, uid uuid.UUID) ([]entity.BadgeProgress, error) {
	all, err := bs.GetBadgeProgress(ctx, uid)
	if err != nil {
		return nil, err
	}
	earned := make([]entity.BadgeProgress, 0, len(all))
	for _, b := range all {
		if b.Earned {
			earned = append(earned, b)
		}
	}
	return earned, nil
}

func (bs *BadgeService) GetStreak(ctx context.Context, uid uuid.UUID) (entity.Streak, error) {
	if uid == uuid.Nil {
		return entity.Streak{}, errorvalues.ErrUnauthenticated
	}
	today := DayOf(bs.opts.Clock.Now(), bs.opts.Location)
	first := today.AddDate(0, 0, -(bs.lookbackDays - 1))
	// Window start as an instant in the quest time zone
	since := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, bs.opts.Location)
	rows, err := bs.progress.ListCompleted(ctx, uid, since)
	if err != nil {
		return entity.Streak{}, err
	}
	return computeStreak(rows, today, bs.lookbackDays), nil
}

func (bs *BadgeService) hasKind(kind entity.BadgeKind) bool {
	for _, def := range bs.badges {
		if def.Kind == kind {
			return true
		}
	}
	return false
}

func newBadgeProgress(def entity.BadgeDefinition, current int) entity.BadgeProgress {
	percentage := 100.0
	if def.RequiredCount > 0 {
		percentage = float64(current) / float64(def.RequiredCount) * 100
	}
	if percentage > 100 {
		percentage = 100
	}
	return entity.BadgeProgress{
		BadgeName:          def.Name,
		Description:        def.Description,
		CurrentCount:       current,
		RequiredCount:      def.RequiredCount,
		ProgressPercentage: percentage,
		Earned:             current >= def.RequiredCount,
	}
}

func countCompletions(rows []entity.QuestProgress, def entity.BadgeDefinition) int {
	count := 0
	for _, r := range rows {
		if !r.Completed() {
			continue
		}
		if def.Category != "" && r.Category != def.Category {
			continue
		}
		if def.QuestType != "" && r.QuestType != def.QuestType {
			continue
		}
		count++
	}
	return count
}

// championWeeks counts weeks in which every quest of weekly was completed. Each week counts once.
func championWeeks(rows []entity.QuestProgress, weekly []uuid.UUID) int {
	if len(weekly) == 0 {
		return 0
	}
	wanted := make(map[uuid.UUID]struct{}, len(weekly))
	for _, id := range weekly {
		wanted[id] = struct{}{}
	}
	done := make(map[string]map[uuid.UUID]struct{})
	for _, r := range rows {
		if !r.Completed() || r.QuestType != entity.QuestWeekly {
			continue
		}
		if _, ok := wanted[r.QuestID]; !ok {
			continue
		}
		week := r.PeriodKey.Format(time.DateOnly)
		if done[week] == nil {
			done[week] = make(map[uuid.UUID]struct{}, len(weekly))
		}
		done[week][r.QuestID] = struct{}{}
	}
	count := 0
	for _, quests := range done {
		if len(quests) == len(wanted) {
			count++
		}
	}
	return count
}

// computeStreak walks back from today over days with a completed daily quest.
// A day without one, today included, ends the current streak.
func computeStreak(rows []entity.QuestProgress, today time.Time, lookbackDays int) entity.Streak {
	first := today.AddDate(0, 0, -(lookbackDays - 1))
	days := make(map[string]struct{})
	var last *time.Time
	for _, r := range rows {
		if !r.Completed() || r.QuestType != entity.QuestDaily {
			continue
		}
		day := r.PeriodKey
		if day.Before(first) || day.After(today) {
			continue
		}
		days[day.Format(time.DateOnly)] = struct{}{}
		if last == nil || day.After(*last) {
			d := day
			last = &d
		}
	}
	streak := entity.Streak{LastCompletedOn: last}
	for d := today; !d.Before(first); d = d.AddDate(0, 0, -1) {
		if _, ok := days[d.Format(time.DateOnly)]; !ok {
			break
		}
		streak.Current++
	}
	run := 0
	for d := first; !d.After(today); d = d.AddDate(0, 0, 1) {
		if _, ok := days[d.Format(time.DateOnly)]; ok {
			run++
			if run > streak.Longest {
				streak.Longest = run
			}
			continue
		}
		run = 0
	}
	return streak
}
