package service

import (
	"context"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/internal/repository"
	"github.com/limbo/agriquest/pkg/entity"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// CreditService owns the credit account. The balance only grows, through Award.
type CreditService struct {
	repo repository.CreditsRepositoryI
	tx   repository.TxRunner
}

func NewCreditService(creditsRepo repository.CreditsRepositoryI, tx repository.TxRunner) *CreditService {
	return &CreditService{
		repo: creditsRepo,
		tx:   tx,
	}
}

// Award joins the caller's transaction when there is one.
func (cs *CreditService) Award(ctx context.Context, uid uuid.UUID, amount int, progressID uuid.UUID) (int, error) {
	if uid == uuid.Nil {
		return 0, errorvalues.ErrUnauthenticated
	}
	if amount <= 0 {
		return 0, errorvalues.ErrInvalidAmount
	}
	var balance int
	err := cs.tx.RunInTx(ctx, func(ctx context.Context) error {
		err := cs.repo.AppendEvent(ctx, entity.CreditAward{
			UserID:     uid,
			ProgressID: progressID,
			Amount:     amount,
		})
		if err != nil {
			return err
		}
		balance, err = cs.repo.AddCredits(ctx, uid, amount)
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (cs *CreditService) GetBalance(ctx context.Context, uid uuid.UUID) (int, error) {
	if uid == uuid.Nil {
		return 0, errorvalues.ErrUnauthenticated
	}
	return cs.repo.GetCredits(ctx, uid)
}

func (cs *CreditService) History(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.CreditEvent, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	return cs.repo.ListEvents(ctx, uid, limit, offset)
}
