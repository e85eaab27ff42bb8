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

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	httpapi "autoloc-backend/internal/api/http"
	"autoloc-backend/internal/config"
	"autoloc-backend/internal/jobs"
	"autoloc-backend/internal/logger"
	"autoloc-backend/internal/repository/firestore"
	"autoloc-backend/internal/scheduler"
	"autoloc-backend/internal/security"
	"autoloc-backend/internal/service"
	"autoloc-backend/internal/storage"
)

func main() {
	// Load .env if present; real env vars win.
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Autoloc backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firebase configuration", "project_id", cfg.Firebase.ProjectID)

	ctx := context.Background()

	// Initialize Firebase
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: cfg.Firebase.StorageBucket,
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

	// Initialize Authentication
	var authenticator httpapi.Authenticator
	switch cfg.Auth.Mode {
	case "firebase":
		authClient, err := app.Auth(ctx)
		if err != nil {
			logger.Error("Failed to initialize Firebase auth", "error", err)
			log.Fatalf("Failed to initialize Firebase auth: %v", err)
		}
		authenticator = httpapi.NewFirebaseAuthenticator(authClient)
	case "local":
		tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenExpiryMinute)*time.Minute)
		authenticator = httpapi.NewLocalAuthenticator(tokenManager)
	}

	// Initialize Storage Service
	var storageService storage.Interface
	var mockStorage *storage.MockStorage
	if cfg.Storage.Type == "mock" {
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err = storage.NewMockStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
	} else {
		firebaseStorage, err := storage.NewFirebaseStorage(ctx, app, cfg.Firebase.StorageBucket)
		if err != nil {
			logger.Error("Failed to initialize Firebase storage", "error", err)
			log.Fatalf("Failed to initialize Firebase storage: %v", err)
		}
		storageService = firebaseStorage
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository)
	clientSvc := service.NewClientService(store.ClientRepository)
	chargeSvc := service.NewChargeService(store.ChargeRepository, store.VehicleRepository)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.VehicleRepository,
		store.ClientRepository,
		store.ChargeRepository,
		emailSvc,
	)
	inspectionSvc := service.NewInspectionService(
		store.InspectionRepository,
		store.ReservationRepository,
		storageService,
	)
	reportSvc := service.NewReportService(
		store.VehicleRepository,
		store.ReservationRepository,
		store.ChargeRepository,
	)

	// Start the scheduler when enabled
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobRunner := jobs.NewJobRunner(store, &jobs.Services{
			Email:       emailSvc,
			Reservation: reservationSvc,
			Report:      reportSvc,
		}, cfg)
		sched = scheduler.NewScheduler(jobRunner)
		sched.Start()
	}

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Auth:         authenticator,
		Vehicles:     vehicleSvc,
		Clients:      clientSvc,
		Reservations: reservationSvc,
		Charges:      chargeSvc,
		Inspections:  inspectionSvc,
		Reports:      reportSvc,
		MockStorage:  mockStorage,
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	if sched != nil {
		sched.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
