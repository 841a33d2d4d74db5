// Package memory provides the in-process store backing the marketplace.
// Nothing is persisted; all state resets on restart. Repositories hand
// out copies, so a record read from the store stays valid even after a
// later mutation replaces it.
package memory

import "gearshare-backend/internal/repository"

// Store bundles all repositories over a shared in-memory dataset.
type Store struct {
	UserRepository      repository.UserRepository
	EquipmentRepository repository.EquipmentRepository
	RentalRepository    repository.RentalRepository
	PlanRepository      repository.PaymentPlanRepository
	MessageRepository   repository.MessageRepository
}

// NewStore creates an empty store. Call Seed to load the default
// accounts, plans and sample inventory.
func NewStore() *Store {
	return &Store{
		UserRepository:      newUserRepository(),
		EquipmentRepository: newEquipmentRepository(),
		RentalRepository:    newRentalRepository(),
		PlanRepository:      newPlanRepository(),
		MessageRepository:   newMessageRepository(),
	}
}
