package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository/memory"
	"gearshare-backend/internal/security"
	"gearshare-backend/internal/service"
)

// Seeded fixture ids: user 1 is the admin, 2 the shopkeeper, 3 the
// renter; plans 1 (Weekly, 7 days) and 2 (Monthly, 30 days).
const (
	adminID      = "1"
	shopkeeperID = "2"
	renterID     = "3"
	weeklyPlanID = "1"
)

type testEnv struct {
	store     *memory.Store
	hub       *service.MessageHub
	auth      service.AuthService
	users     service.UserService
	equipment service.EquipmentService
	rentals   service.RentalService
	plans     service.PaymentPlanService
	messages  service.MessageService
	admin     service.AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.Seed(context.Background()))

	hub := service.NewMessageHub()
	tokens := security.NewTokenManager(
		"test-secret-test-secret-test-secret!", time.Hour, 24*time.Hour)

	return &testEnv{
		store:     store,
		hub:       hub,
		auth:      service.NewAuthService(store.UserRepository, tokens),
		users:     service.NewUserService(store.UserRepository),
		equipment: service.NewEquipmentService(store.EquipmentRepository, store.PlanRepository, store.RentalRepository),
		rentals: service.NewRentalService(
			store.RentalRepository,
			store.EquipmentRepository,
			store.PlanRepository,
			store.UserRepository,
			store.MessageRepository,
			hub,
		),
		plans:    service.NewPaymentPlanService(store.PlanRepository),
		messages: service.NewMessageService(store.MessageRepository, store.UserRepository, hub),
		admin: service.NewAdminService(
			store.UserRepository,
			store.EquipmentRepository,
			store.RentalRepository,
			store.MessageRepository,
			hub,
		),
	}
}

// bucklerID looks up the seeded Buckler listing.
func (e *testEnv) bucklerID(t *testing.T) string {
	t.Helper()
	items, err := e.store.EquipmentRepository.ListByOwner(context.Background(), shopkeeperID)
	require.NoError(t, err)
	for _, eq := range items {
		if eq.Name == "Buckler" {
			return eq.ID
		}
	}
	t.Fatal("seeded Buckler not found")
	return ""
}

func (e *testEnv) inbox(t *testing.T, userID string) []domain.Message {
	t.Helper()
	msgs, err := e.messages.Inbox(context.Background(), userID)
	require.NoError(t, err)
	return msgs
}
