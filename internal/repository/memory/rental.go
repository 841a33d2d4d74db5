package memory

import (
	"context"
	"sort"
	"sync"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

type rentalRepository struct {
	mu      sync.RWMutex
	rentals map[string]domain.Rental
	order   []string
}

func newRentalRepository() repository.RentalRepository {
	return &rentalRepository{rentals: make(map[string]domain.Rental)}
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rentals[rental.ID] = *rental
	r.order = append(r.order, rental.ID)
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.rentals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rt, nil
}

// GetActiveByEquipment returns the rental currently occupying a piece of
// equipment. At most one exists: the lifecycle engine refuses a second
// request while one is active.
func (r *rentalRepository) GetActiveByEquipment(ctx context.Context, equipmentID string) (*domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rt := range r.rentals {
		if rt.EquipmentID == equipmentID && rt.Active() {
			out := rt
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rentals[rental.ID]; !ok {
		return repository.ErrNotFound
	}
	r.rentals[rental.ID] = *rental
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rentals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rentals, id)
	return nil
}

func (r *rentalRepository) ListByRenter(ctx context.Context, renterID string) ([]domain.Rental, error) {
	return r.list(func(rt domain.Rental) bool { return rt.RenterID == renterID })
}

func (r *rentalRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Rental, error) {
	return r.list(func(rt domain.Rental) bool { return rt.OwnerID == ownerID })
}

func (r *rentalRepository) ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	return r.list(func(rt domain.Rental) bool { return rt.Status == status })
}

func (r *rentalRepository) list(keep func(domain.Rental) bool) ([]domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := make(map[string]int, len(r.order))
	for i, id := range r.order {
		idx[id] = i
	}
	var rentals []domain.Rental
	for _, rt := range r.rentals {
		if keep(rt) {
			rentals = append(rentals, rt)
		}
	}
	sort.Slice(rentals, func(i, j int) bool { return idx[rentals[i].ID] < idx[rentals[j].ID] })
	return rentals, nil
}
