package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/service"
)

func TestAuthService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user, err := env.auth.Register(ctx, "new@example.com", "secret1", domain.RoleRenter, "")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, domain.RoleRenter, user.Role)
	})

	t.Run("Email is normalized", func(t *testing.T) {
		user, err := env.auth.Register(ctx, "  Mixed@Example.COM ", "secret1", domain.RoleShopkeeper, "")
		require.NoError(t, err)
		assert.Equal(t, "mixed@example.com", user.Email)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		_, err := env.auth.Register(ctx, "new@example.com", "secret1", domain.RoleRenter, "")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("Duplicate differs only in case", func(t *testing.T) {
		_, err := env.auth.Register(ctx, "NEW@example.com", "secret1", domain.RoleRenter, "")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("Invalid email", func(t *testing.T) {
		_, err := env.auth.Register(ctx, "not-an-email", "secret1", domain.RoleRenter, "")
		assert.ErrorIs(t, err, service.ErrInvalidEmail)
	})

	t.Run("Weak password", func(t *testing.T) {
		_, err := env.auth.Register(ctx, "weak@example.com", "12345", domain.RoleRenter, "")
		assert.ErrorIs(t, err, service.ErrWeakPassword)
	})

	t.Run("Admin cannot be registered", func(t *testing.T) {
		_, err := env.auth.Register(ctx, "evil@example.com", "secret1", domain.RoleAdmin, "")
		assert.ErrorIs(t, err, service.ErrInvalidRole)
	})
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("Seeded renter logs in", func(t *testing.T) {
		user, access, refresh, err := env.auth.Login(ctx, "renter@gmail.com", "renter")
		require.NoError(t, err)
		assert.Equal(t, renterID, user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, _, _, err := env.auth.Login(ctx, "renter@gmail.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Password comparison is exact", func(t *testing.T) {
		_, _, _, err := env.auth.Login(ctx, "renter@gmail.com", "Renter")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown account", func(t *testing.T) {
		_, _, _, err := env.auth.Login(ctx, "ghost@gmail.com", "renter")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, access, refresh, err := env.auth.Login(ctx, "shop@gmail.com", "shop")
	require.NoError(t, err)

	t.Run("Refresh token yields a new pair", func(t *testing.T) {
		newAccess, newRefresh, err := env.auth.Refresh(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("Access token is refused", func(t *testing.T) {
		_, _, err := env.auth.Refresh(ctx, access)
		assert.Error(t, err)
	})

	t.Run("Garbage token is refused", func(t *testing.T) {
		_, _, err := env.auth.Refresh(ctx, "not.a.token")
		assert.Error(t, err)
	})
}

func TestUserService_GetShopkeeper(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("Shopkeeper profile is readable", func(t *testing.T) {
		user, err := env.users.GetShopkeeper(ctx, shopkeeperID)
		require.NoError(t, err)
		assert.Equal(t, "shop@gmail.com", user.Email)
	})

	t.Run("Non-shopkeeper accounts are not exposed", func(t *testing.T) {
		_, err := env.users.GetShopkeeper(ctx, renterID)
		assert.ErrorIs(t, err, service.ErrUserNotFound)

		_, err = env.users.GetShopkeeper(ctx, adminID)
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := env.users.GetShopkeeper(ctx, "missing")
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestUserService_Profile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("Update email", func(t *testing.T) {
		user, err := env.users.UpdateEmail(ctx, renterID, "renter2@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, "renter2@gmail.com", user.Email)

		// Old address is free again, new one is taken.
		_, err = env.auth.Register(ctx, "renter2@gmail.com", "secret1", domain.RoleRenter, "")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("Update email to another user's address", func(t *testing.T) {
		_, err := env.users.UpdateEmail(ctx, renterID, "shop@gmail.com")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("Update password", func(t *testing.T) {
		require.NoError(t, env.users.UpdatePassword(ctx, renterID, "longer-secret"))
		_, _, _, err := env.auth.Login(ctx, "renter2@gmail.com", "longer-secret")
		assert.NoError(t, err)
	})

	t.Run("Weak new password", func(t *testing.T) {
		err := env.users.UpdatePassword(ctx, renterID, "123")
		assert.ErrorIs(t, err, service.ErrWeakPassword)
	})

	t.Run("Update profile image", func(t *testing.T) {
		require.NoError(t, env.users.UpdateProfileImage(ctx, renterID, "https://img.example/me.png"))
		user, err := env.users.GetProfile(ctx, renterID)
		require.NoError(t, err)
		assert.Equal(t, "https://img.example/me.png", user.ProfileImage)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := env.users.GetProfile(ctx, "missing")
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}
