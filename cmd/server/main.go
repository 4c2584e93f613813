package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"purelift/server/internal/advisory"
	"purelift/server/internal/api"
	"purelift/server/internal/config"
	"purelift/server/internal/logging"
	"purelift/server/internal/repository/mongo"
	"purelift/server/internal/service"
	"purelift/server/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// @title PureLift API
// @version 1.0
// @description API for workout logging, progressive overload tracking and weekly volume.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("FATAL: Could not load config: %v", err)
	}

	logging.Setup(cfg.Logging)
	logrus.Info("Starting PureLift server...")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logrus.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		logrus.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logrus.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logrus.Info("Database connection established.")

	// --- Ensure Indexes ---
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureSetLogIndexes(ctx, appDB.Collection("set_logs"))
		mongo.EnsureRoutineIndexes(ctx, appDB.Collection("routines"))
		logrus.Info("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	snapshotStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logrus.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Advisory Gateway ---
	if cfg.Advisory.APIKey == "" {
		logrus.Warn("No advisory API key configured; all advisory calls will use static fallbacks.")
	}
	advisor := advisory.NewGeminiClient(cfg.Advisory.APIKey, cfg.Advisory.BaseURL, cfg.Advisory.Model, cfg.Advisory.Timeout)

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	setLogRepo := mongo.NewMongoSetLogRepository(appDB)
	routineRepo := mongo.NewMongoRoutineRepository(appDB)
	settingsRepo := mongo.NewMongoSettingsRepository(appDB)

	// --- Initialize Services ---
	now := time.Now
	newID := uuid.NewString

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	exerciseService := service.NewExerciseService(exerciseRepo, routineRepo, advisor, newID)
	routineService := service.NewRoutineService(routineRepo, exerciseRepo, advisor, newID)
	workoutService := service.NewWorkoutService(exerciseRepo, setLogRepo, routineRepo, settingsRepo, advisor, now, newID)
	dashboardService := service.NewDashboardService(exerciseRepo, setLogRepo, settingsRepo, advisor, now)
	settingsService := service.NewSettingsService(settingsRepo, now)
	exportService := service.NewExportService(exerciseRepo, setLogRepo, routineRepo, settingsRepo, snapshotStorage, now)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		authService,
		exerciseService,
		routineService,
		workoutService,
		dashboardService,
		settingsService,
		exportService,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logrus.Infof("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exiting.")
}
