package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

func TestSeed(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	users, err := store.UserRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)
	assert.Equal(t, "admin@gmail.com", users[0].Email)

	plans, err := store.PlanRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "1", plans[0].ID)
	assert.Equal(t, 7, plans[0].DurationDays)

	items, err := store.EquipmentRepository.ListByOwner(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, items, 4)
	for _, eq := range items {
		assert.Equal(t, domain.EquipmentStatusRenting, eq.Status)
		assert.NotEmpty(t, eq.Images)
		assert.NotEmpty(t, eq.PaymentPlanIDs)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	t.Run("Case-insensitive lookup", func(t *testing.T) {
		user, err := store.UserRepository.GetByEmail(ctx, "SHOP@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, "2", user.ID)
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := store.UserRepository.GetByEmail(ctx, "ghost@gmail.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestEquipmentRepository_CopyOnRead(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	items, err := store.EquipmentRepository.ListByOwner(ctx, "2")
	require.NoError(t, err)
	require.NotEmpty(t, items)

	// Mutating a returned record must not leak into the store.
	items[0].Name = "Tampered"
	items[0].Categories[0] = "Tampered"

	fresh, err := store.EquipmentRepository.GetByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Tampered", fresh.Name)
	assert.NotEqual(t, "Tampered", fresh.Categories[0])
}

func TestRentalRepository_ActiveLookup(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	rental := &domain.Rental{
		ID:          "r1",
		EquipmentID: "e1",
		RenterID:    "3",
		OwnerID:     "2",
		Status:      domain.RentalStatusRequested,
	}
	require.NoError(t, store.RentalRepository.Create(ctx, rental))

	t.Run("Requested counts as active", func(t *testing.T) {
		got, err := store.RentalRepository.GetActiveByEquipment(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, "r1", got.ID)
	})

	t.Run("Returned still counts as active", func(t *testing.T) {
		rental.Status = domain.RentalStatusReturned
		require.NoError(t, store.RentalRepository.Update(ctx, rental))
		_, err := store.RentalRepository.GetActiveByEquipment(ctx, "e1")
		assert.NoError(t, err)
	})

	t.Run("Deleted rental frees the equipment", func(t *testing.T) {
		require.NoError(t, store.RentalRepository.Delete(ctx, "r1"))
		_, err := store.RentalRepository.GetActiveByEquipment(ctx, "e1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRentalRepository_ListsShareOneRecord(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{
		ID: "r1", EquipmentID: "e1", RenterID: "3", OwnerID: "2",
		Status: domain.RentalStatusRequested,
	}))
	require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{
		ID: "r2", EquipmentID: "e2", RenterID: "3", OwnerID: "9",
		Status: domain.RentalStatusReceived,
	}))

	byRenter, err := store.RentalRepository.ListByRenter(ctx, "3")
	require.NoError(t, err)
	assert.Len(t, byRenter, 2)
	// Insertion order is stable.
	assert.Equal(t, "r1", byRenter[0].ID)

	byOwner, err := store.RentalRepository.ListByOwner(ctx, "2")
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
	assert.Equal(t, "r1", byOwner[0].ID)

	byStatus, err := store.RentalRepository.ListByStatus(ctx, domain.RentalStatusReceived)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "r2", byStatus[0].ID)
}

func TestMessageRepository_InboxOrdering(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, id := range []string{"m1", "m2", "m3"} {
		require.NoError(t, store.MessageRepository.Create(ctx, &domain.Message{
			ID: id, ToUserID: "2", FromUserID: "3",
			Type: domain.MessageTypeNotification,
		}))
	}

	inbox, err := store.MessageRepository.ListByRecipient(ctx, "2")
	require.NoError(t, err)
	require.Len(t, inbox, 3)
	assert.Equal(t, "m1", inbox[0].ID)
	assert.Equal(t, "m3", inbox[2].ID)

	require.NoError(t, store.MessageRepository.DeleteByUser(ctx, "2"))
	inbox, err = store.MessageRepository.ListByRecipient(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, inbox)

	_, err = store.MessageRepository.GetByID(ctx, "m1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
