package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/agriquest/pkg/entity"
)

const DefaultSchemeThreshold = 100

type EligibilityService struct {
	credits   CreditServiceI
	schemes   []entity.Scheme
	threshold int
}

func NewEligibilityService(credits CreditServiceI, schemes []entity.Scheme, threshold int) *EligibilityService {
	if threshold <= 0 {
		threshold = DefaultSchemeThreshold
	}
	return &EligibilityService{
		credits:   credits,
		schemes:   schemes,
		threshold: threshold,
	}
}

func (es *EligibilityService) Threshold() int {
	return es.threshold
}

func (es *EligibilityService) IsEligibleForSchemes(ctx context.Context, uid uuid.UUID) (bool, error) {
	balance, err := es.credits.GetBalance(ctx, uid)
	if err != nil {
		return false, err
	}
	return balance >= es.threshold, nil
}

func (es *EligibilityService) ListEligibleSchemes(ctx context.Context, uid uuid.UUID) ([]entity.Scheme, error) {
	eligible, err := es.IsEligibleForSchemes(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return []entity.Scheme{}, nil
	}
	schemes := make([]entity.Scheme, len(es.schemes))
	copy(schemes, es.schemes)
	return schemes, nil
}
