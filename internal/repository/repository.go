package repository

import (
	"context"
	"errors"

	"gearshare-backend/internal/domain"
)

var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.User, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	GetActiveByEquipment(ctx context.Context, equipmentID string) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id string) error
	ListByRenter(ctx context.Context, renterID string) ([]domain.Rental, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Rental, error)
	ListByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
}

type PaymentPlanRepository interface {
	Create(ctx context.Context, plan *domain.PaymentPlan) error
	GetByID(ctx context.Context, id string) (*domain.PaymentPlan, error)
	Update(ctx context.Context, plan *domain.PaymentPlan) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.PaymentPlan, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	ListByRecipient(ctx context.Context, userID string) ([]domain.Message, error)
	DeleteByUser(ctx context.Context, userID string) error
}
