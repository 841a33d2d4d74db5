package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"gearshare-backend/internal/api/http/middleware"
	"gearshare-backend/internal/config"
	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/security"
	"gearshare-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth      service.AuthService
	User      service.UserService
	Equipment service.EquipmentService
	Rental    service.RentalService
	Plan      service.PaymentPlanService
	Message   service.MessageService
	Admin     service.AdminService
}

// NewRouter builds the full HTTP handler: routes, auth gates, metrics
// and CORS.
func NewRouter(svcs Services, tokens security.TokenManager, cfg *config.Config) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.PanicRecovery)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.Metrics)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	authMW := middleware.NewAuthMiddleware(tokens)
	authed := api.NewRoute().Subrouter()
	authed.Use(authMW.Authenticate)

	userHandler := NewUserHandler(svcs.User)
	authed.HandleFunc("/profile", userHandler.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/profile/email", userHandler.UpdateEmail).Methods(http.MethodPut)
	authed.HandleFunc("/profile/password", userHandler.UpdatePassword).Methods(http.MethodPut)
	authed.HandleFunc("/profile/image", userHandler.UpdateProfileImage).Methods(http.MethodPut)

	equipmentHandler := NewEquipmentHandler(svcs.Equipment)
	authed.HandleFunc("/equipment", equipmentHandler.Search).Methods(http.MethodGet)
	authed.HandleFunc("/equipment/{id}", equipmentHandler.Get).Methods(http.MethodGet)

	shopkeeperHandler := NewShopkeeperHandler(svcs.User, svcs.Equipment)
	authed.HandleFunc("/shopkeepers/{id}", shopkeeperHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/shopkeepers/{id}/equipment", shopkeeperHandler.ListEquipment).Methods(http.MethodGet)

	shopkeeper := authed.NewRoute().Subrouter()
	shopkeeper.Use(middleware.RequireRole(domain.RoleShopkeeper))
	shopkeeper.HandleFunc("/equipment", equipmentHandler.Add).Methods(http.MethodPost)
	shopkeeper.HandleFunc("/my/equipment", equipmentHandler.ListMine).Methods(http.MethodGet)
	shopkeeper.HandleFunc("/equipment/{id}", equipmentHandler.Update).Methods(http.MethodPut)
	shopkeeper.HandleFunc("/equipment/{id}", equipmentHandler.Delete).Methods(http.MethodDelete)
	shopkeeper.HandleFunc("/equipment/{id}/status", equipmentHandler.SetStatus).Methods(http.MethodPut)

	rentalHandler := NewRentalHandler(svcs.Rental)
	renter := authed.NewRoute().Subrouter()
	renter.Use(middleware.RequireRole(domain.RoleRenter))
	renter.HandleFunc("/rentals", rentalHandler.Request).Methods(http.MethodPost)
	renter.HandleFunc("/rentals/{id}/cancel", rentalHandler.Cancel).Methods(http.MethodPost)
	renter.HandleFunc("/rentals/{id}/extend", rentalHandler.Extend).Methods(http.MethodPost)
	renter.HandleFunc("/rentals/{id}/return", rentalHandler.Return).Methods(http.MethodPost)

	shopkeeper.HandleFunc("/rentals/{id}/accept", rentalHandler.Accept).Methods(http.MethodPost)
	shopkeeper.HandleFunc("/rentals/{id}/reject", rentalHandler.Reject).Methods(http.MethodPost)
	shopkeeper.HandleFunc("/rentals/{id}/confirm-return", rentalHandler.ConfirmReturn).Methods(http.MethodPost)
	shopkeeper.HandleFunc("/lendings", rentalHandler.ListLendings).Methods(http.MethodGet)

	authed.HandleFunc("/rentals", rentalHandler.ListRentals).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods(http.MethodGet)

	planHandler := NewPlanHandler(svcs.Plan)
	authed.HandleFunc("/plans", planHandler.List).Methods(http.MethodGet)

	admin := authed.NewRoute().Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.HandleFunc("/plans", planHandler.Add).Methods(http.MethodPost)
	admin.HandleFunc("/plans/{id}", planHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/plans/{id}", planHandler.Delete).Methods(http.MethodDelete)

	adminHandler := NewAdminHandler(svcs.Admin)
	admin.HandleFunc("/accounts", adminHandler.ListAccounts).Methods(http.MethodGet)
	admin.HandleFunc("/accounts/{id}", adminHandler.GetAccount).Methods(http.MethodGet)
	admin.HandleFunc("/accounts/{id}", adminHandler.UpdateAccount).Methods(http.MethodPut)
	admin.HandleFunc("/accounts/{id}", adminHandler.DeleteUser).Methods(http.MethodDelete)

	messageHandler := NewMessageHandler(svcs.Message)
	authed.HandleFunc("/messages", messageHandler.Inbox).Methods(http.MethodGet)
	authed.HandleFunc("/messages/{id}/reply", messageHandler.Reply).Methods(http.MethodPost)

	feedHandler := NewMessageFeedHandler(svcs.Message)
	authed.HandleFunc("/messages/feed", feedHandler.Feed).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(r)
}
