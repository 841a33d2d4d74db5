package service

import (
	"context"
	"errors"
	"strings"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) GetShopkeeper(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user.Role != domain.RoleShopkeeper {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateEmail(ctx context.Context, userID, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing.ID != userID {
		return nil, ErrEmailTaken
	}

	user.Email = email
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdatePassword(ctx context.Context, userID, password string) error {
	if len(strings.TrimSpace(password)) < 6 {
		return ErrWeakPassword
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}
	user.Password = strings.TrimSpace(password)
	return s.userRepo.Update(ctx, user)
}

func (s *userService) UpdateProfileImage(ctx context.Context, userID, imageURI string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}
	user.ProfileImage = imageURI
	return s.userRepo.Update(ctx, user)
}
