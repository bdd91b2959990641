package services

import (
	"context"

	"gigwise/internal/models/response_models"
	"gigwise/internal/repositories"
	"gigwise/pkg/utils"
)

type PlanServiceInterface interface {
	ListPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error)
	GetPlanByCode(ctx context.Context, code string) (*response_models.SubscriptionPlan, error)
}

type PlanService struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) PlanServiceInterface {
	return &PlanService{planRepo: planRepo}
}

func (p *PlanService) ListPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error) {
	plans, err := p.planRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SubscriptionPlan, 0, len(plans))
	for _, plan := range plans {
		out = append(out, response_models.SubscriptionPlan{
			ID:          plan.ID,
			Code:        plan.Code,
			Name:        plan.Name,
			Description: plan.Description,
			Period:      string(plan.Period),
			Price:       plan.PriceMinor,
			Currency:    plan.Currency,
			TrialDays:   plan.TrialDays,
			IsActive:    plan.IsActive,
		})
	}
	return out, nil
}

func (p *PlanService) GetPlanByCode(ctx context.Context, code string) (*response_models.SubscriptionPlan, error) {
	plan, err := p.planRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	return &response_models.SubscriptionPlan{
		ID:          plan.ID,
		Code:        plan.Code,
		Name:        plan.Name,
		Description: plan.Description,
		Period:      string(plan.Period),
		Price:       plan.PriceMinor,
		Currency:    plan.Currency,
		TrialDays:   plan.TrialDays,
		IsActive:    plan.IsActive,
	}, nil
}
