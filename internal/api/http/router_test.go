package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearshare-backend/internal/config"
	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository/memory"
	"gearshare-backend/internal/security"
	"gearshare-backend/internal/service"
)

type apiTest struct {
	router http.Handler
	store  *memory.Store
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.Seed(context.Background()))

	tokens := security.NewTokenManager(
		"test-secret-test-secret-test-secret!", time.Hour, 24*time.Hour)
	hub := service.NewMessageHub()

	cfg := &config.Config{}
	router := NewRouter(Services{
		Auth:      service.NewAuthService(store.UserRepository, tokens),
		User:      service.NewUserService(store.UserRepository),
		Equipment: service.NewEquipmentService(store.EquipmentRepository, store.PlanRepository, store.RentalRepository),
		Rental: service.NewRentalService(
			store.RentalRepository, store.EquipmentRepository, store.PlanRepository,
			store.UserRepository, store.MessageRepository, hub),
		Plan:    service.NewPaymentPlanService(store.PlanRepository),
		Message: service.NewMessageService(store.MessageRepository, store.UserRepository, hub),
		Admin: service.NewAdminService(
			store.UserRepository, store.EquipmentRepository, store.RentalRepository,
			store.MessageRepository, hub),
	}, tokens, cfg)

	return &apiTest{router: router, store: store}
}

func (a *apiTest) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *apiTest) login(t *testing.T, email, password string) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestAuthEndpoints(t *testing.T) {
	a := newAPITest(t)

	t.Run("Register", func(t *testing.T) {
		rec := a.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email": "new@example.com", "password": "secret1", "role": "renter",
		})
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("Register with admin role is rejected", func(t *testing.T) {
		rec := a.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email": "evil@example.com", "password": "secret1", "role": "admin",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Duplicate email registers 409", func(t *testing.T) {
		rec := a.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"email": "new@example.com", "password": "secret1", "role": "renter",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Login and refresh", func(t *testing.T) {
		rec := a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email": "renter@gmail.com", "password": "renter",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			RefreshToken string `json:"refresh_token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		rec = a.do(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
			"refresh_token": resp.RefreshToken,
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		rec := a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email": "renter@gmail.com", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthGates(t *testing.T) {
	a := newAPITest(t)

	t.Run("Missing token", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/api/v1/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage token", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/api/v1/profile", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Renter cannot list shopkeeper inventory", func(t *testing.T) {
		token := a.login(t, "renter@gmail.com", "renter")
		rec := a.do(t, http.MethodGet, "/api/v1/my/equipment", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Shopkeeper cannot manage plans", func(t *testing.T) {
		token := a.login(t, "shop@gmail.com", "shop")
		rec := a.do(t, http.MethodPost, "/api/v1/plans", token, map[string]any{
			"title": "Yearly", "duration_days": 365,
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Admin manages plans", func(t *testing.T) {
		token := a.login(t, "admin@gmail.com", "admin")
		rec := a.do(t, http.MethodPost, "/api/v1/plans", token, map[string]any{
			"title": "Yearly", "duration_days": 365,
		})
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("Admin updates any account", func(t *testing.T) {
		token := a.login(t, "admin@gmail.com", "admin")
		rec := a.do(t, http.MethodPut, "/api/v1/accounts/3", token, map[string]string{
			"email": "renter-updated@example.com",
		})
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = a.do(t, http.MethodPut, "/api/v1/accounts/3", token, map[string]string{
			"email": "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRentalFlowOverHTTP(t *testing.T) {
	a := newAPITest(t)
	renterToken := a.login(t, "renter@gmail.com", "renter")
	shopToken := a.login(t, "shop@gmail.com", "shop")

	// Find the Buckler through search.
	rec := a.do(t, http.MethodGet, "/api/v1/equipment?q=buckler", renterToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var found []domain.Equipment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 1)
	equipmentID := found[0].ID

	// Request it on the weekly plan.
	rec = a.do(t, http.MethodPost, "/api/v1/rentals", renterToken, map[string]string{
		"equipment_id": equipmentID, "plan_id": "1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var rental domain.Rental
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rental))
	assert.Equal(t, domain.RentalStatusRequested, rental.Status)

	// Shopkeeper cannot request rentals at all.
	rec = a.do(t, http.MethodPost, "/api/v1/rentals", shopToken, map[string]string{
		"equipment_id": equipmentID, "plan_id": "1",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Owner sees it under lendings and accepts.
	rec = a.do(t, http.MethodGet, "/api/v1/lendings", shopToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var lendings []domain.Rental
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lendings))
	require.Len(t, lendings, 1)

	rec = a.do(t, http.MethodPost, fmt.Sprintf("/api/v1/rentals/%s/accept", rental.ID), shopToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Extend twice, return, confirm.
	for i := 0; i < 2; i++ {
		rec = a.do(t, http.MethodPost, fmt.Sprintf("/api/v1/rentals/%s/extend", rental.ID), renterToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	var extended domain.Rental
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &extended))
	assert.Equal(t, 2, extended.TotalExtensions)

	rec = a.do(t, http.MethodPost, fmt.Sprintf("/api/v1/rentals/%s/return", rental.ID), renterToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodPost, fmt.Sprintf("/api/v1/rentals/%s/confirm-return", rental.ID), shopToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Record is gone; the message trail remains.
	rec = a.do(t, http.MethodGet, "/api/v1/rentals", renterToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rentals []domain.Rental
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rentals))
	assert.Empty(t, rentals)

	rec = a.do(t, http.MethodGet, "/api/v1/messages", renterToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var inbox []domain.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inbox))
	assert.NotEmpty(t, inbox)
}

func TestEquipmentEndpoints(t *testing.T) {
	a := newAPITest(t)
	shopToken := a.login(t, "shop@gmail.com", "shop")

	t.Run("Add listing", func(t *testing.T) {
		rec := a.do(t, http.MethodPost, "/api/v1/equipment", shopToken, map[string]any{
			"name":             "Arming Sword",
			"price":            "150",
			"description":      "One-handed steel trainer",
			"categories":       []string{"Sword"},
			"payment_plan_ids": []string{"1"},
			"images":           []string{"https://gearshare.example/img/arming.jpg"},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var eq domain.Equipment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eq))
		assert.Equal(t, int64(15000), eq.PriceCents)
	})

	t.Run("Schema validation rejects missing images", func(t *testing.T) {
		rec := a.do(t, http.MethodPost, "/api/v1/equipment", shopToken, map[string]any{
			"name":             "No Pics",
			"price":            "10",
			"payment_plan_ids": []string{"1"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Duplicate name is a conflict", func(t *testing.T) {
		rec := a.do(t, http.MethodPost, "/api/v1/equipment", shopToken, map[string]any{
			"name":             "buckler",
			"price":            "10",
			"payment_plan_ids": []string{"1"},
			"images":           []string{"x"},
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestShopkeeperEndpoints(t *testing.T) {
	a := newAPITest(t)
	renterToken := a.login(t, "renter@gmail.com", "renter")

	t.Run("Renter reads a shopkeeper profile", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/api/v1/shopkeepers/2", renterToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var user domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "shop@gmail.com", user.Email)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("Renter browses a shopkeeper inventory", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/api/v1/shopkeepers/2/equipment", renterToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var items []domain.Equipment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Len(t, items, 4)
	})

	t.Run("Non-shopkeeper ids are not exposed", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/api/v1/shopkeepers/3", renterToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMetricsAndHealth(t *testing.T) {
	a := newAPITest(t)

	rec := a.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
