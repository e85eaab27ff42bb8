package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"autoloc-backend/internal/config"
	"autoloc-backend/internal/jobs"
	"autoloc-backend/internal/logger"
	"autoloc-backend/internal/repository/firestore"
	"autoloc-backend/internal/scheduler"
	"autoloc-backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'mark-overdue-reservations', 'all-nightly', 'all-monthly')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Autoloc cronjob runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize Firebase
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: cfg.Firebase.ProjectID,
	}, opts...)
	if err != nil {
		logger.Error("Failed to initialize Firebase app", "error", err)
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		logger.Error("Failed to connect to Firestore", "error", err)
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer fsClient.Close()
	logger.Info("Firestore connection established")

	// Initialize Repositories
	store := firestore.NewStore(fsClient)

	// Initialize Services
	emailService := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	reservationService := service.NewReservationService(
		store.ReservationRepository,
		store.VehicleRepository,
		store.ClientRepository,
		store.ChargeRepository,
		emailService,
	)

	reportService := service.NewReportService(
		store.VehicleRepository,
		store.ReservationRepository,
		store.ChargeRepository,
	)

	jobServices := &jobs.Services{
		Email:       emailService,
		Reservation: reservationService,
		Report:      reportService,
	}

	jobRunner := jobs.NewJobRunner(store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "mark-overdue-reservations":
		jobRunner.MarkOverdueReservations()
	case "send-return-reminders":
		jobRunner.SendReturnReminders()
	case "send-owner-statements":
		jobRunner.SendOwnerStatements()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	case "all-monthly":
		jobRunner.RunAllMonthlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - mark-overdue-reservations\n")
		fmt.Printf("  - send-return-reminders\n")
		fmt.Printf("  - send-owner-statements\n")
		fmt.Printf("  - all-nightly\n")
		fmt.Printf("  - all-monthly\n")
		os.Exit(1)
	}
}
