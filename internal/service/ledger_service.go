package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/internal/repository"
	"github.com/limbo/agriquest/pkg/entity"
)

// LedgerService records quest completions. A completion and its credit award
// are written in one transaction.
type LedgerService struct {
	tx       repository.TxRunner
	catalog  CatalogServiceI
	progress repository.ProgressRepositoryI
	credits  CreditServiceI
	opts     Options
}

func NewLedgerService(tx repository.TxRunner, catalog CatalogServiceI, progressRepo repository.ProgressRepositoryI,
	credits CreditServiceI, opts Options) *LedgerService {
	return &LedgerService{
		tx:       tx,
		catalog:  catalog,
		progress: progressRepo,
		credits:  credits,
		opts:     opts.withDefaults(),
	}
}

func (ls *LedgerService) RecordCompletion(ctx context.Context, uid, questID uuid.UUID) (*entity.CompletionResult, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	logger := ls.opts.Logger.With(slog.String("user_id", uid.String()), slog.String("quest_id", questID.String()))
	quest, err := ls.catalog.GetQuest(ctx, questID)
	if err != nil {
		return nil, err
	}
	now := ls.opts.Clock.Now()
	progress := newProgress(uid, quest, now, ls.opts.Location)
	progress.CompletedAt = &now
	result := &entity.CompletionResult{QuestID: questID}
	err = ls.tx.RunInTx(ctx, func(ctx context.Context) error {
		transitioned, err := ls.progress.CompleteOnce(ctx, progress)
		if err != nil {
			return err
		}
		if !transitioned {
			result.AlreadyCompleted = true
			current, err := ls.progress.Find(ctx, uid, questID, progress.PeriodKey)
			if err != nil {
				return err
			}
			if current != nil {
				progress = current
			}
			result.Balance, err = ls.credits.GetBalance(ctx, uid)
			return err
		}
		result.Balance, err = ls.credits.Award(ctx, uid, quest.Points, progress.ID)
		if err != nil {
			return err
		}
		result.Awarded = quest.Points
		return nil
	})
	if err != nil {
		logger.Error("recording completion failed", slog.String("error", err.Error()))
		return nil, err
	}
	result.Progress = progress
	if result.AlreadyCompleted {
		logger.Info("quest already completed for period", slog.Time("period_key", progress.PeriodKey))
	} else {
		logger.Info("quest completed",
			slog.Time("period_key", progress.PeriodKey),
			slog.Int("awarded", result.Awarded),
			slog.Int("balance", result.Balance),
		)
	}
	return result, nil
}

func (ls *LedgerService) StartQuest(ctx context.Context, uid, questID uuid.UUID) (*entity.QuestProgress, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	quest, err := ls.catalog.GetQuest(ctx, questID)
	if err != nil {
		return nil, err
	}
	return ls.progress.Start(ctx, newProgress(uid, quest, ls.opts.Clock.Now(), ls.opts.Location))
}

func (ls *LedgerService) QuestBoard(ctx context.Context, uid uuid.UUID, questType entity.QuestType) ([]entity.QuestStatus, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	if questType != "" && !questType.Valid() {
		return nil, errorvalues.ErrInvalidQuestType
	}
	quests, err := ls.catalog.ActiveQuests(ctx)
	if err != nil {
		return nil, err
	}
	now := ls.opts.Clock.Now()
	board := make([]entity.QuestStatus, 0, len(quests))
	keys := make([]entity.QuestType, 0, 3)
	for _, q := range quests {
		if questType != "" && q.Type != questType {
			continue
		}
		board = append(board, entity.QuestStatus{
			Quest:     q,
			Status:    entity.StatusNotStarted,
			PeriodKey: PeriodKey(q.Type, now, ls.opts.Location),
		})
		keys = appendUnique(keys, q.Type)
	}
	if len(board) == 0 {
		return board, nil
	}
	periodKeys := make([]time.Time, 0, len(keys))
	for _, qt := range keys {
		periodKeys = append(periodKeys, PeriodKey(qt, now, ls.opts.Location))
	}
	rows, err := ls.progress.ListByPeriods(ctx, uid, periodKeys)
	if err != nil {
		return nil, err
	}
	type rowKey struct {
		questID uuid.UUID
		period  string
	}
	statuses := make(map[rowKey]entity.ProgressStatus, len(rows))
	for _, r := range rows {
		statuses[rowKey{r.QuestID, r.PeriodKey.Format(time.DateOnly)}] = r.Status
	}
	for i := range board {
		status, ok := statuses[rowKey{board[i].Quest.ID, board[i].PeriodKey.Format(time.DateOnly)}]
		if !ok {
			continue
		}
		board[i].Status = status
		board[i].Completed = status == entity.StatusCompleted
	}
	return board, nil
}

func appendUnique(types []entity.QuestType, qt entity.QuestType) []entity.QuestType {
	for _, t := range types {
		if t == qt {
			return types
		}
	}
	return append(types, qt)
}
