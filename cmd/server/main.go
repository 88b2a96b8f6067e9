package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dias221467/Animal_Rescue/internal/config"
	"github.com/Dias221467/Animal_Rescue/internal/database"
	"github.com/Dias221467/Animal_Rescue/internal/handlers"
	"github.com/Dias221467/Animal_Rescue/internal/jobs"
	"github.com/Dias221467/Animal_Rescue/internal/repository"
	"github.com/Dias221467/Animal_Rescue/internal/scheduler"
	"github.com/Dias221467/Animal_Rescue/internal/services"
	"github.com/Dias221467/Animal_Rescue/pkg/logger"
	"github.com/Dias221467/Animal_Rescue/pkg/upload"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	reportRepo := repository.NewReportRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	ngoRepo := repository.NewNGORepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	animalRepo := repository.NewAnimalRepository(db)

	// --- Services ---
	notificationService := services.NewNotificationService(notificationRepo, ngoRepo, cfg.FanOutWorkers)
	reportService := services.NewReportService(reportRepo, notificationService)
	ngoService := services.NewNGOService(ngoRepo)
	applicationService := services.NewApplicationService(applicationRepo, notificationService)
	animalService := services.NewAnimalService(animalRepo)

	// --- Handlers ---
	photos := upload.NewPhotoStore(cfg.UploadDir)
	router := handlers.NewRouter(handlers.Handlers{
		Reports:       handlers.NewReportHandler(reportService, ngoService, photos, cfg.MaxUploadBytes),
		Notifications: handlers.NewNotificationHandler(notificationService),
		NGOs:          handlers.NewNGOHandler(ngoService, cfg.JWTSecret, cfg.TokenExpiry),
		Applications:  handlers.NewApplicationHandler(applicationService),
		Animals:       handlers.NewAnimalHandler(animalService, photos, cfg.MaxUploadBytes),
	}, cfg.JWTSecret, cfg.UploadDir)

	// --- Background jobs ---
	backlogCron, err := scheduler.StartBacklogCron(cfg.BacklogCron, jobs.NewBacklogReporter(reportService))
	if err != nil {
		log.Fatalf("Scheduler error: %v", err)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Handler(router),
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	go func() {
		logger.Log.WithField("port", cfg.Port).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Log.Info("Shutting down")

	<-backlogCron.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("HTTP server shutdown failed")
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		logger.Log.WithError(err).Error("MongoDB disconnect failed")
	}
	logger.Log.Info("Server stopped")
}
