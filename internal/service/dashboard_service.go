package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	errorvalues "github.com/limbo/agriquest/internal/error_values"
	"github.com/limbo/agriquest/pkg/entity"
)

type DashboardService struct {
	credits     CreditServiceI
	badges      BadgeServiceI
	eligibility EligibilityServiceI
}

func NewDashboardService(credits CreditServiceI, badges BadgeServiceI, eligibility EligibilityServiceI) *DashboardService {
	return &DashboardService{
		credits:     credits,
		badges:      badges,
		eligibility: eligibility,
	}
}

// Summary runs the reads concurrently and fails on the first error.
func (ds *DashboardService) Summary(ctx context.Context, uid uuid.UUID) (*entity.DashboardSummary, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	summary := &entity.DashboardSummary{UserID: uid}
	var schemes []entity.Scheme
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		balance, err := ds.credits.GetBalance(ctx, uid)
		summary.Balance = balance
		return err
	})
	g.Go(func() error {
		badges, err := ds.badges.GetBadgeProgress(ctx, uid)
		summary.Badges = badges
		return err
	})
	g.Go(func() error {
		streak, err := ds.badges.GetStreak(ctx, uid)
		summary.Streak = streak
		return err
	})
	g.Go(func() error {
		var err error
		schemes, err = ds.eligibility.ListEligibleSchemes(ctx, uid)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	summary.Eligible = summary.Balance >= ds.eligibility.Threshold()
	summary.SchemesCount = len(schemes)
	for _, b := range summary.Badges {
		if b.Earned {
			summary.EarnedCount++
		}
	}
	return summary, nil
}
