package memory

import (
	"context"
	"sort"
	"sync"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

type planRepository struct {
	mu    sync.RWMutex
	plans map[string]domain.PaymentPlan
	order []string
}

func newPlanRepository() repository.PaymentPlanRepository {
	return &planRepository{plans: make(map[string]domain.PaymentPlan)}
}

func (r *planRepository) Create(ctx context.Context, plan *domain.PaymentPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.ID] = *plan
	r.order = append(r.order, plan.ID)
	return nil
}

func (r *planRepository) GetByID(ctx context.Context, id string) (*domain.PaymentPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *planRepository) Update(ctx context.Context, plan *domain.PaymentPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[plan.ID]; !ok {
		return repository.ErrNotFound
	}
	r.plans[plan.ID] = *plan
	return nil
}

func (r *planRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}

func (r *planRepository) List(ctx context.Context) ([]domain.PaymentPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := make(map[string]int, len(r.order))
	for i, id := range r.order {
		idx[id] = i
	}
	plans := make([]domain.PaymentPlan, 0, len(r.plans))
	for _, p := range r.plans {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool { return idx[plans[i].ID] < idx[plans[j].ID] })
	return plans, nil
}
