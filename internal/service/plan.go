package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

var (
	ErrPlanNotFound    = errors.New("payment plan not found")
	ErrPlanTitleTaken  = errors.New("a plan with this title already exists")
	ErrPlanFieldsEmpty = errors.New("plan title and duration are required")
)

type planService struct {
	planRepo repository.PaymentPlanRepository
}

func NewPaymentPlanService(planRepo repository.PaymentPlanRepository) PaymentPlanService {
	return &planService{planRepo: planRepo}
}

// titleTaken checks for a duplicate title, case-insensitive and
// trimmed. skipID exempts the plan being edited.
func (s *planService) titleTaken(ctx context.Context, title, skipID string) (bool, error) {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return false, err
	}
	needle := strings.ToLower(strings.TrimSpace(title))
	for _, p := range plans {
		if p.ID != skipID && strings.ToLower(strings.TrimSpace(p.Title)) == needle {
			return true, nil
		}
	}
	return false, nil
}

func (s *planService) AddPlan(ctx context.Context, title string, durationDays int) (*domain.PaymentPlan, error) {
	title = strings.TrimSpace(title)
	if title == "" || durationDays <= 0 {
		return nil, ErrPlanFieldsEmpty
	}
	taken, err := s.titleTaken(ctx, title, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPlanTitleTaken
	}

	plan := &domain.PaymentPlan{
		ID:           uuid.NewString(),
		Title:        title,
		DurationDays: durationDays,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) UpdatePlan(ctx context.Context, planID, title string, durationDays int) (*domain.PaymentPlan, error) {
	title = strings.TrimSpace(title)
	if title == "" || durationDays <= 0 {
		return nil, ErrPlanFieldsEmpty
	}
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	taken, err := s.titleTaken(ctx, title, planID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPlanTitleTaken
	}

	plan.Title = title
	plan.DurationDays = durationDays
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// DeletePlan removes a plan from the registry. Rentals in flight keep
// their plan snapshot and are unaffected.
func (s *planService) DeletePlan(ctx context.Context, planID string) error {
	if err := s.planRepo.Delete(ctx, planID); err != nil {
		return ErrPlanNotFound
	}
	return nil
}

func (s *planService) ListPlans(ctx context.Context) ([]domain.PaymentPlan, error) {
	return s.planRepo.List(ctx)
}
