package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "equiprent-backend/internal/api/http"
	"equiprent-backend/internal/config"
	"equiprent-backend/internal/jobs"
	"equiprent-backend/internal/logger"
	"equiprent-backend/internal/repository/postgres"
	"equiprent-backend/internal/scheduler"
	"equiprent-backend/internal/security"
	"equiprent-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present so local runs pick up secrets
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EquipRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
	)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, store.RoleRepository)
	roleSvc := service.NewRoleService(store.RoleRepository)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository)
	contractSvc := service.NewContractService(store.ContractRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.EquipmentRepository,
		store.UserRepository,
		contractSvc,
		emailSvc,
		store,
	)
	deliverySvc := service.NewDeliveryService(
		store.DeliveryRepository,
		store.RentalRepository,
		store.UserRepository,
	)
	labSvc := service.NewLabService(
		store.LabRepository,
		store.RentalRepository,
		store.EquipmentRepository,
		store.UserRepository,
		emailSvc,
		store,
	)

	// Set up HTTP router
	router := httpapi.NewRouter(httpapi.Services{
		Auth:      authSvc,
		User:      userSvc,
		Role:      roleSvc,
		Equipment: equipmentSvc,
		Rental:    rentalSvc,
		Contract:  contractSvc,
		Delivery:  deliverySvc,
		Lab:       labSvc,
	}, tokenManager)

	// Start the in-process scheduler
	jobRunner := jobs.NewJobRunner(db, store, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
