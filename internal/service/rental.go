package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/metrics"
	"gearshare-backend/internal/repository"
	"gearshare-backend/internal/utils"
)

var (
	ErrRentalNotFound    = errors.New("rental not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrPlanNotAccepted   = errors.New("payment plan not accepted for this equipment")
	ErrAlreadyRequested  = errors.New("equipment already has an active rental")
	ErrOwnEquipment      = errors.New("cannot rent your own equipment")
	ErrNotRequested      = errors.New("rental is not in requested state")
	ErrNotReceived       = errors.New("rental is not in received state")
	ErrReturnNotPending  = errors.New("rental has no pending return")
	ErrReturnPending     = errors.New("rental already has a pending return")
	ErrNotRentalParty    = errors.New("user is not a party to this rental")
)

type rentalService struct {
	messenger
	rentalRepo repository.RentalRepository
	equipRepo  repository.EquipmentRepository
	planRepo   repository.PaymentPlanRepository
	userRepo   repository.UserRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	equipRepo repository.EquipmentRepository,
	planRepo repository.PaymentPlanRepository,
	userRepo repository.UserRepository,
	msgRepo repository.MessageRepository,
	hub *MessageHub,
) RentalService {
	return &rentalService{
		messenger:  messenger{msgRepo: msgRepo, hub: hub},
		rentalRepo: rentalRepo,
		equipRepo:  equipRepo,
		planRepo:   planRepo,
		userRepo:   userRepo,
	}
}

// RequestRental creates a rental in Requested state with plan and price
// snapshots taken from the listing. The owner gets a REQUEST message,
// the renter a self NOTIFICATION.
func (s *rentalService) RequestRental(ctx context.Context, renterID, equipmentID, planID string) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.RequestRental", "renterID", renterID, "equipmentID", equipmentID, "planID", planID)

	eq, err := s.equipRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, ErrEquipmentNotFound
	}
	if eq.OwnerID == renterID {
		return nil, ErrOwnEquipment
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, ErrPlanNotAccepted
	}
	accepted := false
	for _, id := range eq.PaymentPlanIDs {
		if id == plan.ID {
			accepted = true
			break
		}
	}
	if !accepted {
		return nil, ErrPlanNotAccepted
	}

	if _, err := s.rentalRepo.GetActiveByEquipment(ctx, equipmentID); err == nil {
		return nil, ErrAlreadyRequested
	}

	now := time.Now().Format(time.RFC3339)
	rental := &domain.Rental{
		ID:            uuid.NewString(),
		EquipmentID:   eq.ID,
		EquipmentName: eq.Name,
		RenterID:      renterID,
		OwnerID:       eq.OwnerID,
		PlanID:        plan.ID,
		PlanTitle:     plan.Title,
		PlanDays:      plan.DurationDays,
		PriceCents:    eq.PriceCents,
		Status:        domain.RentalStatusRequested,
		CreatedOn:     now,
		UpdatedOn:     now,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	metrics.RentalTransitions.WithLabelValues("request").Inc()

	renterEmail := s.emailOf(ctx, renterID)
	s.notify(ctx, eq.OwnerID, renterID, domain.MessageTypeRequest, plan.ID,
		"%s wants to rent \"%s\" under the \"%s\" plan.", renterEmail, eq.Name, plan.Title)
	s.notify(ctx, renterID, renterID, domain.MessageTypeNotification, plan.ID,
		"You requested to rent \"%s\" under the \"%s\" plan.", eq.Name, plan.Title)

	logger.ExitMethod("rentalService.RequestRental", "rentalID", rental.ID)
	return rental, nil
}

// CancelRequest removes a Requested rental entirely.
func (s *rentalService) CancelRequest(ctx context.Context, renterID, rentalID string) error {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return ErrRentalNotFound
	}
	if rt.RenterID != renterID {
		return ErrNotRentalParty
	}
	if rt.Status != domain.RentalStatusRequested {
		return ErrNotRequested
	}

	if err := s.rentalRepo.Delete(ctx, rt.ID); err != nil {
		return err
	}
	metrics.RentalTransitions.WithLabelValues("cancel").Inc()

	renterEmail := s.emailOf(ctx, renterID)
	s.notify(ctx, rt.OwnerID, renterID, domain.MessageTypeNotification, rt.PlanID,
		"%s has cancelled the rent request for \"%s\" under the \"%s\" plan.", renterEmail, rt.EquipmentName, rt.PlanTitle)
	s.notify(ctx, renterID, renterID, domain.MessageTypeNotification, rt.PlanID,
		"You cancelled the rent request for \"%s\" under the \"%s\" plan.", rt.EquipmentName, rt.PlanTitle)
	return nil
}

// AcceptRequest moves a Requested rental to Received and resets the
// extension counter.
func (s *rentalService) AcceptRequest(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, ErrRentalNotFound
	}
	if rt.OwnerID != ownerID {
		return nil, ErrNotRentalParty
	}
	if rt.Status != domain.RentalStatusRequested {
		return nil, ErrNotRequested
	}

	rt.Status = domain.RentalStatusReceived
	rt.TotalExtensions = 0
	rt.IsReturnPending = false
	rt.UpdatedOn = time.Now().Format(time.RFC3339)
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	metrics.RentalTransitions.WithLabelValues("accept").Inc()

	renterEmail := s.emailOf(ctx, rt.RenterID)
	s.notify(ctx, rt.RenterID, ownerID, domain.MessageTypeNotification, rt.PlanID,
		"Your rental request for \"%s\" has been approved!", rt.EquipmentName)
	s.notify(ctx, ownerID, ownerID, domain.MessageTypeNotification, rt.PlanID,
		"You approved %s's request for \"%s\".", renterEmail, rt.EquipmentName)
	return rt, nil
}

// RejectRequest removes a Requested rental entirely.
func (s *rentalService) RejectRequest(ctx context.Context, ownerID, rentalID string) error {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return ErrRentalNotFound
	}
	if rt.OwnerID != ownerID {
		return ErrNotRentalParty
	}
	if rt.Status != domain.RentalStatusRequested {
		return ErrNotRequested
	}

	if err := s.rentalRepo.Delete(ctx, rt.ID); err != nil {
		return err
	}
	metrics.RentalTransitions.WithLabelValues("reject").Inc()

	renterEmail := s.emailOf(ctx, rt.RenterID)
	s.notify(ctx, rt.RenterID, ownerID, domain.MessageTypeNotification, rt.PlanID,
		"Your request for \"%s\" under the \"%s\" plan has been rejected.", rt.EquipmentName, rt.PlanTitle)
	s.notify(ctx, ownerID, ownerID, domain.MessageTypeNotification, rt.PlanID,
		"You rejected %s's request for \"%s\" under the \"%s\" plan.", renterEmail, rt.EquipmentName, rt.PlanTitle)
	return nil
}

// ExtendRental bumps the extension counter on a Received rental.
func (s *rentalService) ExtendRental(ctx context.Context, renterID, rentalID string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, ErrRentalNotFound
	}
	if rt.RenterID != renterID {
		return nil, ErrNotRentalParty
	}
	if rt.Status != domain.RentalStatusReceived {
		return nil, ErrNotReceived
	}
	if rt.IsReturnPending {
		return nil, ErrReturnPending
	}

	rt.TotalExtensions++
	rt.UpdatedOn = time.Now().Format(time.RFC3339)
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	metrics.RentalTransitions.WithLabelValues("extend").Inc()

	renterEmail := s.emailOf(ctx, renterID)
	total := utils.FormatCents(utils.TotalCost(rt))
	s.notify(ctx, rt.OwnerID, renterID, domain.MessageTypeNotification, rt.PlanID,
		"%s extended the rental for \"%s\" (%s) to %d time(s). Running total: $%s.", renterEmail, rt.EquipmentName, rt.PlanTitle, rt.TotalExtensions, total)
	s.notify(ctx, renterID, renterID, domain.MessageTypeNotification, rt.PlanID,
		"You extended \"%s\" (%s) to %d time(s). Running total: $%s.", rt.EquipmentName, rt.PlanTitle, rt.TotalExtensions, total)
	return rt, nil
}

// ReturnRental marks a Received rental as Returned, pending the owner's
// confirmation.
func (s *rentalService) ReturnRental(ctx context.Context, renterID, rentalID string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, ErrRentalNotFound
	}
	if rt.RenterID != renterID {
		return nil, ErrNotRentalParty
	}
	if rt.Status != domain.RentalStatusReceived {
		return nil, ErrNotReceived
	}
	if rt.IsReturnPending {
		return nil, ErrReturnPending
	}

	rt.Status = domain.RentalStatusReturned
	rt.IsReturnPending = true
	rt.UpdatedOn = time.Now().Format(time.RFC3339)
	if err := s.rentalRepo.Update(ctx, rt); err != nil {
		return nil, err
	}
	metrics.RentalTransitions.WithLabelValues("return").Inc()

	renterEmail := s.emailOf(ctx, renterID)
	s.notify(ctx, rt.OwnerID, renterID, domain.MessageTypeNotification, rt.PlanID,
		"%s has returned \"%s\" (%s) with %d extension(s).", renterEmail, rt.EquipmentName, rt.PlanTitle, rt.TotalExtensions)
	s.notify(ctx, renterID, renterID, domain.MessageTypeNotification, rt.PlanID,
		"You returned \"%s\" (%s) with %d extension(s).", rt.EquipmentName, rt.PlanTitle, rt.TotalExtensions)
	return rt, nil
}

// ConfirmReturn removes the rental record for good. There is no archive;
// the message trail is the only history kept.
func (s *rentalService) ConfirmReturn(ctx context.Context, ownerID, rentalID string) error {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return ErrRentalNotFound
	}
	if rt.OwnerID != ownerID {
		return ErrNotRentalParty
	}
	if rt.Status != domain.RentalStatusReturned || !rt.IsReturnPending {
		return ErrReturnNotPending
	}

	if err := s.rentalRepo.Delete(ctx, rt.ID); err != nil {
		return err
	}
	metrics.RentalTransitions.WithLabelValues("confirm_return").Inc()

	renterEmail := s.emailOf(ctx, rt.RenterID)
	total := utils.FormatCents(utils.TotalCost(rt))
	s.notify(ctx, rt.RenterID, ownerID, domain.MessageTypeNotification, rt.PlanID,
		"\"%s\" (%s) has been successfully received by the shopkeeper. Total extensions: %d. Total cost: $%s.", rt.EquipmentName, rt.PlanTitle, rt.TotalExtensions, total)
	s.notify(ctx, ownerID, ownerID, domain.MessageTypeNotification, rt.PlanID,
		"You confirmed the return of \"%s\" (%s) from %s. Total extensions: %d. Total cost: $%s.", rt.EquipmentName, rt.PlanTitle, renterEmail, rt.TotalExtensions, total)
	return nil
}

func (s *rentalService) ListRentals(ctx context.Context, renterID string) ([]domain.Rental, error) {
	return s.rentalRepo.ListByRenter(ctx, renterID)
}

func (s *rentalService) ListLendings(ctx context.Context, ownerID string) ([]domain.Rental, error) {
	return s.rentalRepo.ListByOwner(ctx, ownerID)
}

func (s *rentalService) GetRental(ctx context.Context, userID, rentalID string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, ErrRentalNotFound
	}
	if rt.RenterID != userID && rt.OwnerID != userID {
		return nil, ErrNotRentalParty
	}
	return rt, nil
}

func (s *rentalService) emailOf(ctx context.Context, userID string) string {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return u.Email
}

// notify delivers one lifecycle message; delivery failure is logged,
// never surfaced, so a transition cannot fail after its state change.
func (s *rentalService) notify(ctx context.Context, to, from string, msgType domain.MessageType, planID, format string, args ...any) {
	if err := s.send(ctx, to, from, fmt.Sprintf(format, args...), msgType, planID); err != nil {
		logger.Error("Failed to deliver rental message", "to", to, "error", err)
	}
}
