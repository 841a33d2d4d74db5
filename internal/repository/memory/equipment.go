package memory

import (
	"context"
	"sort"
	"sync"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

type equipmentRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Equipment
	order []string
}

func newEquipmentRepository() repository.EquipmentRepository {
	return &equipmentRepository{items: make(map[string]domain.Equipment)}
}

// cloneEquipment deep-copies the slice fields so a caller holding a
// returned record cannot alias store state.
func cloneEquipment(eq domain.Equipment) domain.Equipment {
	eq.Categories = append([]string(nil), eq.Categories...)
	eq.PaymentPlanIDs = append([]string(nil), eq.PaymentPlanIDs...)
	eq.Images = append([]string(nil), eq.Images...)
	return eq
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[eq.ID] = cloneEquipment(*eq)
	r.order = append(r.order, eq.ID)
	return nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	eq, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneEquipment(eq)
	return &out, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[eq.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[eq.ID] = cloneEquipment(*eq)
	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *equipmentRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Equipment, error) {
	return r.list(func(eq domain.Equipment) bool { return eq.OwnerID == ownerID })
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	return r.list(func(domain.Equipment) bool { return true })
}

func (r *equipmentRepository) list(keep func(domain.Equipment) bool) ([]domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := make(map[string]int, len(r.order))
	for i, id := range r.order {
		idx[id] = i
	}
	var items []domain.Equipment
	for _, eq := range r.items {
		if keep(eq) {
			items = append(items, cloneEquipment(eq))
		}
	}
	sort.Slice(items, func(i, j int) bool { return idx[items[i].ID] < idx[items[j].ID] })
	return items, nil
}
