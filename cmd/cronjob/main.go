package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"fleetrent-backend/internal/config"
	"fleetrent-backend/internal/jobs"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository/postgres"
	"fleetrent-backend/internal/scheduler"
	"fleetrent-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'refresh-overdue-rentals', 'send-overdue-reminders', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting FleetRent Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Services
	emailService := service.NewEmailService(cfg.Email)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store, emailService, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutdown signal received")
	cronScheduler.Stop()
}

func runJobOnce(jr *jobs.JobRunner, job string) {
	switch job {
	case "refresh-overdue-rentals":
		jr.RefreshOverdueRentals()
	case "send-overdue-reminders":
		jr.SendOverdueReminders()
	case "all-nightly":
		jr.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job", "job", job)
		os.Exit(1)
	}
}
