package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "fleetrent-backend/internal/api/http"
	"fleetrent-backend/internal/config"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository/postgres"
	"fleetrent-backend/internal/security"
	"fleetrent-backend/internal/service"

	_ "github.com/lib/pq"
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
	logger.Info("Starting FleetRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, store.StoreRepository)
	storeSvc := service.NewStoreService(store.StoreRepository, store.UserRepository, store.RentalRepository)
	vehicleSvc := service.NewVehicleService(
		store.VehicleRepository,
		store.VehicleTypeRepository,
		store.StoreRepository,
		store.RentalRepository,
		store.TransferRepository,
	)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.VehicleRepository,
		store.VehicleTypeRepository,
		store.StoreRepository,
		store.UserRepository,
		emailSvc,
	)
	transferSvc := service.NewTransferService(
		store.TransferRepository,
		store.VehicleRepository,
		store.StoreRepository,
		store.RentalRepository,
	)

	// Initialize Router
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Auth:      authSvc,
		Users:     userSvc,
		Stores:    storeSvc,
		Vehicles:  vehicleSvc,
		Rentals:   rentalSvc,
		Transfers: transferSvc,
		Tokens:    tokenManager,
		UserRepo:  store.UserRepository,
	})

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
