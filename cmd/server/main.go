package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "gearshare-backend/internal/api/http"
	"gearshare-backend/internal/config"
	"gearshare-backend/internal/jobs"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/repository/memory"
	"gearshare-backend/internal/scheduler"
	"gearshare-backend/internal/security"
	"gearshare-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GearShare backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	// Initialize Repositories
	store := memory.NewStore()
	if !cfg.Seed.Disabled {
		if err := store.Seed(context.Background()); err != nil {
			logger.Error("Failed to seed store", "error", err)
			log.Fatalf("Failed to seed store: %v", err)
		}
		logger.Info("Seeded default accounts, plans and inventory")
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenDuration(), cfg.RefreshTokenDuration())

	// Initialize Services
	hub := service.NewMessageHub()
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, store.PlanRepository, store.RentalRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.EquipmentRepository,
		store.PlanRepository,
		store.UserRepository,
		store.MessageRepository,
		hub,
	)
	planSvc := service.NewPaymentPlanService(store.PlanRepository)
	messageSvc := service.NewMessageService(store.MessageRepository, store.UserRepository, hub)
	adminSvc := service.NewAdminService(
		store.UserRepository,
		store.EquipmentRepository,
		store.RentalRepository,
		store.MessageRepository,
		hub,
	)

	// Initialize HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Auth:      authSvc,
		User:      userSvc,
		Equipment: equipmentSvc,
		Rental:    rentalSvc,
		Plan:      planSvc,
		Message:   messageSvc,
		Admin:     adminSvc,
	}, tokenManager, cfg)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // websocket feed stays open
		IdleTimeout:  60 * time.Second,
	}

	// Initialize Scheduler
	notifier := service.NewNotifier(store.MessageRepository, hub)
	jobRunner := jobs.NewJobRunner(store, notifier, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("Shutdown complete")
}
