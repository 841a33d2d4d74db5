package service

import (
	"context"

	"gearshare-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string, role domain.Role, profileImage string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	// GetShopkeeper is the public storefront read: any authenticated
	// user may look up a shopkeeper's profile by id.
	GetShopkeeper(ctx context.Context, userID string) (*domain.User, error)
	UpdateEmail(ctx context.Context, userID, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, password string) error
	UpdateProfileImage(ctx context.Context, userID, imageURI string) error
}

// EquipmentInput carries a listing as submitted by a shopkeeper. Price
// arrives as a decimal string and is parsed into cents during validation.
type EquipmentInput struct {
	Name           string
	Price          string
	Description    string
	Categories     []string
	PaymentPlanIDs []string
	Images         []string
}

type EquipmentService interface {
	AddEquipment(ctx context.Context, ownerID string, in EquipmentInput) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, ownerID, equipmentID string, in EquipmentInput) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, ownerID, equipmentID string) error
	SetAvailability(ctx context.Context, ownerID, equipmentID string, status domain.EquipmentStatus) (*domain.Equipment, error)
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	ListMyEquipment(ctx context.Context, ownerID string) ([]domain.Equipment, error)
	SearchEquipment(ctx context.Context, query string, categories []string) ([]domain.Equipment, error)
}

type RentalService interface {
	RequestRental(ctx context.Context, renterID, equipmentID, planID string) (*domain.Rental, error)
	CancelRequest(ctx context.Context, renterID, rentalID string) error
	AcceptRequest(ctx context.Context, ownerID, rentalID string) (*domain.Rental, error)
	RejectRequest(ctx context.Context, ownerID, rentalID string) error
	ExtendRental(ctx context.Context, renterID, rentalID string) (*domain.Rental, error)
	ReturnRental(ctx context.Context, renterID, rentalID string) (*domain.Rental, error)
	ConfirmReturn(ctx context.Context, ownerID, rentalID string) error
	ListRentals(ctx context.Context, renterID string) ([]domain.Rental, error)
	ListLendings(ctx context.Context, ownerID string) ([]domain.Rental, error)
	GetRental(ctx context.Context, userID, rentalID string) (*domain.Rental, error)
}

type PaymentPlanService interface {
	AddPlan(ctx context.Context, title string, durationDays int) (*domain.PaymentPlan, error)
	UpdatePlan(ctx context.Context, planID, title string, durationDays int) (*domain.PaymentPlan, error)
	DeletePlan(ctx context.Context, planID string) error
	ListPlans(ctx context.Context) ([]domain.PaymentPlan, error)
}

type MessageService interface {
	Inbox(ctx context.Context, userID string) ([]domain.Message, error)
	Reply(ctx context.Context, userID, messageID, content string) error
	// Subscribe registers a live feed of messages delivered to userID.
	// The returned cancel func must be called when the feed is dropped.
	Subscribe(userID string) (<-chan domain.Message, func())
}

// AccountUpdate carries field changes for an admin-driven account edit.
// Empty fields are left untouched.
type AccountUpdate struct {
	Email        string
	Password     string
	ProfileImage string
}

type AdminService interface {
	ListAccounts(ctx context.Context) ([]domain.User, error)
	GetAccount(ctx context.Context, userID string) (*domain.User, error)
	UpdateAccount(ctx context.Context, userID string, upd AccountUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}
