package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/metrics"
	"gearshare-backend/internal/repository"
	"gearshare-backend/internal/utils"
)

var (
	ErrNameRequired      = errors.New("equipment name is required")
	ErrDuplicateName     = errors.New("an equipment with this name already exists")
	ErrNoImages          = errors.New("at least one equipment image is required")
	ErrNoPlans           = errors.New("at least one payment plan is required")
	ErrUnknownPlan       = errors.New("unknown payment plan id")
	ErrNotOwner          = errors.New("equipment does not belong to this shopkeeper")
	ErrEquipmentOnLoan   = errors.New("equipment has an active rental")
	ErrInvalidStatusFlag = errors.New("status must be Renting or Rented")
)

type equipmentService struct {
	equipRepo  repository.EquipmentRepository
	planRepo   repository.PaymentPlanRepository
	rentalRepo repository.RentalRepository
}

func NewEquipmentService(
	equipRepo repository.EquipmentRepository,
	planRepo repository.PaymentPlanRepository,
	rentalRepo repository.RentalRepository,
) EquipmentService {
	return &equipmentService{
		equipRepo:  equipRepo,
		planRepo:   planRepo,
		rentalRepo: rentalRepo,
	}
}

// validate runs all listing rules. skipID exempts the listing being
// edited from the unique-name check.
func (s *equipmentService) validate(ctx context.Context, ownerID string, in *EquipmentInput, skipID string) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, ErrNameRequired
	}

	priceCents, err := utils.ParsePrice(in.Price)
	if err != nil {
		return 0, err
	}

	if len(in.Images) == 0 {
		return 0, ErrNoImages
	}
	if len(in.PaymentPlanIDs) == 0 {
		return 0, ErrNoPlans
	}
	for _, planID := range in.PaymentPlanIDs {
		if _, err := s.planRepo.GetByID(ctx, planID); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrUnknownPlan, planID)
		}
	}

	owned, err := s.equipRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	newName := strings.ToLower(in.Name)
	for _, eq := range owned {
		if eq.ID == skipID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(eq.Name)) == newName {
			return 0, ErrDuplicateName
		}
	}

	return priceCents, nil
}

func (s *equipmentService) AddEquipment(ctx context.Context, ownerID string, in EquipmentInput) (*domain.Equipment, error) {
	priceCents, err := s.validate(ctx, ownerID, &in, "")
	if err != nil {
		return nil, err
	}

	eq := &domain.Equipment{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Name:           in.Name,
		Description:    in.Description,
		Categories:     in.Categories,
		PriceCents:     priceCents,
		PaymentPlanIDs: in.PaymentPlanIDs,
		Images:         in.Images,
		Status:         domain.EquipmentStatusRenting,
		CreatedOn:      time.Now().Format(time.RFC3339),
	}
	if err := s.equipRepo.Create(ctx, eq); err != nil {
		return nil, err
	}
	metrics.EquipmentListed.Inc()
	return eq, nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, ownerID, equipmentID string, in EquipmentInput) (*domain.Equipment, error) {
	eq, err := s.equipRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, ErrEquipmentNotFound
	}
	if eq.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	priceCents, err := s.validate(ctx, ownerID, &in, equipmentID)
	if err != nil {
		return nil, err
	}

	eq.Name = in.Name
	eq.Description = in.Description
	eq.Categories = in.Categories
	eq.PriceCents = priceCents
	eq.PaymentPlanIDs = in.PaymentPlanIDs
	eq.Images = in.Images
	if err := s.equipRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

// DeleteEquipment refuses while a rental is in flight; the rental
// engine holds snapshots, but a live renter would lose the listing
// under their request.
func (s *equipmentService) DeleteEquipment(ctx context.Context, ownerID, equipmentID string) error {
	eq, err := s.equipRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return ErrEquipmentNotFound
	}
	if eq.OwnerID != ownerID {
		return ErrNotOwner
	}
	if _, err := s.rentalRepo.GetActiveByEquipment(ctx, equipmentID); err == nil {
		return ErrEquipmentOnLoan
	}
	return s.equipRepo.Delete(ctx, equipmentID)
}

// SetAvailability flips the shopkeeper-managed Renting/Rented flag.
// The rental lifecycle never touches this field.
func (s *equipmentService) SetAvailability(ctx context.Context, ownerID, equipmentID string, status domain.EquipmentStatus) (*domain.Equipment, error) {
	if status != domain.EquipmentStatusRenting && status != domain.EquipmentStatusRented {
		return nil, ErrInvalidStatusFlag
	}
	eq, err := s.equipRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, ErrEquipmentNotFound
	}
	if eq.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	eq.Status = status
	if err := s.equipRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	eq, err := s.equipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrEquipmentNotFound
	}
	return eq, nil
}

func (s *equipmentService) ListMyEquipment(ctx context.Context, ownerID string) ([]domain.Equipment, error) {
	return s.equipRepo.ListByOwner(ctx, ownerID)
}

// SearchEquipment filters the whole catalog by name/description/category
// substring and optional category selection.
func (s *equipmentService) SearchEquipment(ctx context.Context, query string, categories []string) ([]domain.Equipment, error) {
	all, err := s.equipRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	var out []domain.Equipment
	for _, eq := range all {
		if query != "" && !matchesQuery(eq, query) {
			continue
		}
		if len(categories) > 0 && !matchesCategory(eq, categories) {
			continue
		}
		out = append(out, eq)
	}
	return out, nil
}

func matchesQuery(eq domain.Equipment, query string) bool {
	if strings.Contains(strings.ToLower(eq.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(eq.Description), query) {
		return true
	}
	for _, cat := range eq.Categories {
		if strings.Contains(strings.ToLower(cat), query) {
			return true
		}
	}
	return false
}

func matchesCategory(eq domain.Equipment, selected []string) bool {
	for _, want := range selected {
		for _, cat := range eq.Categories {
			if strings.EqualFold(cat, want) {
				return true
			}
		}
	}
	return false
}
