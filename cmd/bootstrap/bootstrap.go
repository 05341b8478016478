package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifelink/config"
	deliveryHttp "lifelink/internal/delivery/http"
	"lifelink/internal/delivery/http/handler"
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"
	"lifelink/internal/infrastructure/cache"
	"lifelink/internal/infrastructure/database"
	"lifelink/internal/infrastructure/geocoding"
	"lifelink/internal/repository"
	"lifelink/internal/service"
	"lifelink/internal/usecase"
	"lifelink/pkg/jwt"
	"lifelink/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedRoles(db, repository.NewRoleRepository()); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// seedRoles inserts the fixed role set on first start
func seedRoles(db *gorm.DB, roleRepo domainRepo.RoleRepository) error {
	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin, Description: "Platform administrator"},
		{ID: entity.RoleIDDonor, RoleName: entity.RoleDonor, Description: "Registered blood donor"},
		{ID: entity.RoleIDHospital, RoleName: entity.RoleHospital, Description: "Hospital issuing blood requests"},
		{ID: entity.RoleIDVolunteer, RoleName: entity.RoleVolunteer, Description: "Campaign volunteer"},
	}

	for i := range roles {
		existing, err := roleRepo.FindByName(db, roles[i].RoleName)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := roleRepo.Create(db, &roles[i]); err != nil {
			return err
		}
	}

	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize geocoder with Redis read-through cache
	nominatim := geocoding.NewNominatimClient(cfg.Geocoder, log)
	geocoder := geocoding.NewCachedGeocoder(nominatim, redisClient, cfg.Geocoder.CacheTTL, log)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	requestRepo := repository.NewRequestRepository()
	responseRepo := repository.NewResponseRepository()
	recordRepo := repository.NewDonationRecordRepository()
	campaignRepo := repository.NewCampaignRepository()
	signupRepo := repository.NewVolunteerSignupRepository()
	resourceRepo := repository.NewResourceRepository()

	// Initialize services
	matcher := service.NewMatcherService(db, log, userRepo, cfg.Matching.MaxRadiusKM)
	notifier := service.NewNotifierService(log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, geocoder, jwtService, redisClient)
	donorUsecase := usecase.NewDonorUsecase(db, log, userRepo, recordRepo, geocoder)
	requestUsecase := usecase.NewRequestUsecase(db, log, requestRepo, responseRepo, userRepo, matcher, notifier, cfg.Matching.DefaultRadiusKM)
	workflowUsecase := usecase.NewResponseWorkflowUsecase(db, log, requestRepo, responseRepo, recordRepo, userRepo, requestUsecase, notifier)
	campaignUsecase := usecase.NewCampaignUsecase(db, log, campaignRepo, signupRepo)
	volunteerUsecase := usecase.NewVolunteerUsecase(db, log, campaignRepo, signupRepo)
	resourceUsecase := usecase.NewResourceUsecase(db, log, resourceRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	donorHandler := handler.NewDonorHandler(donorUsecase, customValidator)
	requestHandler := handler.NewRequestHandler(requestUsecase, customValidator)
	responseHandler := handler.NewResponseHandler(workflowUsecase, customValidator)
	campaignHandler := handler.NewCampaignHandler(campaignUsecase, customValidator)
	volunteerHandler := handler.NewVolunteerHandler(volunteerUsecase)
	resourceHandler := handler.NewResourceHandler(resourceUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		donorHandler,
		requestHandler,
		responseHandler,
		campaignHandler,
		volunteerHandler,
		resourceHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
