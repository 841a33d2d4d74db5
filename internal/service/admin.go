package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/repository"
)

var ErrCannotDeleteAdmin = errors.New("admin accounts cannot be deleted")

type adminService struct {
	messenger
	userRepo   repository.UserRepository
	equipRepo  repository.EquipmentRepository
	rentalRepo repository.RentalRepository
}

func NewAdminService(
	userRepo repository.UserRepository,
	equipRepo repository.EquipmentRepository,
	rentalRepo repository.RentalRepository,
	msgRepo repository.MessageRepository,
	hub *MessageHub,
) AdminService {
	return &adminService{
		messenger:  messenger{msgRepo: msgRepo, hub: hub},
		userRepo:   userRepo,
		equipRepo:  equipRepo,
		rentalRepo: rentalRepo,
	}
}

func (s *adminService) ListAccounts(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *adminService) GetAccount(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateAccount applies the non-empty fields of upd to any account,
// running the same validation the self-service profile edits do.
func (s *adminService) UpdateAccount(ctx context.Context, userID string, upd AccountUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if upd.Email != "" {
		email := strings.ToLower(strings.TrimSpace(upd.Email))
		if !emailPattern.MatchString(email) {
			return nil, ErrInvalidEmail
		}
		if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing.ID != userID {
			return nil, ErrEmailTaken
		}
		user.Email = email
	}
	if upd.Password != "" {
		if len(strings.TrimSpace(upd.Password)) < 6 {
			return nil, ErrWeakPassword
		}
		user.Password = strings.TrimSpace(upd.Password)
	}
	if upd.ProfileImage != "" {
		user.ProfileImage = upd.ProfileImage
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account and everything hanging off it: rentals
// where the user is renter or owner are dropped with a notification to
// the counterparty, the user's listings and inbox are deleted last.
func (s *adminService) DeleteUser(ctx context.Context, userID string) error {
	logger.EnterMethod("adminService.DeleteUser", "userID", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}
	if user.Role == domain.RoleAdmin {
		return ErrCannotDeleteAdmin
	}

	asRenter, err := s.rentalRepo.ListByRenter(ctx, userID)
	if err != nil {
		return err
	}
	for _, rt := range asRenter {
		if err := s.rentalRepo.Delete(ctx, rt.ID); err != nil {
			return err
		}
		s.counterpartyNotice(ctx, rt.OwnerID, rt.PlanID,
			"The rental of \"%s\" was cancelled because the renter's account was removed.", rt.EquipmentName)
	}

	asOwner, err := s.rentalRepo.ListByOwner(ctx, userID)
	if err != nil {
		return err
	}
	for _, rt := range asOwner {
		if err := s.rentalRepo.Delete(ctx, rt.ID); err != nil {
			return err
		}
		s.counterpartyNotice(ctx, rt.RenterID, rt.PlanID,
			"Your rental of \"%s\" was cancelled because the shopkeeper's account was removed.", rt.EquipmentName)
	}

	listings, err := s.equipRepo.ListByOwner(ctx, userID)
	if err != nil {
		return err
	}
	for _, eq := range listings {
		if err := s.equipRepo.Delete(ctx, eq.ID); err != nil {
			return err
		}
	}

	if err := s.msgRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	logger.ExitMethod("adminService.DeleteUser", "userID", userID)
	return nil
}

func (s *adminService) counterpartyNotice(ctx context.Context, to, planID, format string, args ...any) {
	if err := s.send(ctx, to, to, fmt.Sprintf(format, args...), domain.MessageTypeNotification, planID); err != nil {
		logger.Error("Failed to deliver account removal notice", "to", to, "error", err)
	}
}
