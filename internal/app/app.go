package app

import (
	"fmt"
	"time"

	"shopcart_backend/internal/auth"
	"shopcart_backend/internal/config"
	"shopcart_backend/internal/database"
	"shopcart_backend/internal/email"
	"shopcart_backend/internal/handlers"
	"shopcart_backend/internal/logger"
	"shopcart_backend/internal/middleware"
	"shopcart_backend/internal/repositories"
	"shopcart_backend/internal/routes"
	"shopcart_backend/internal/services"
	"shopcart_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run loads configuration, connects the database, migrates the schema and
// serves HTTP until the process is stopped.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Schema migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
// Exported so tests can build the full HTTP surface without Run.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// Repositories
	userRepo := repositories.NewUserRepository(gormDB)
	tokenRepo := repositories.NewVerificationTokenRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	itemRepo := repositories.NewItemRepository(gormDB)
	cartRepo := repositories.NewCartRepository(gormDB)

	// Auth primitives
	tokenManager := auth.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTTLMin)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTLDay)*24*time.Hour,
	)
	resetTokens := auth.NewResetTokenGenerator(
		cfg.JWT.Secret,
		time.Duration(cfg.PasswordReset.TimeoutHours)*time.Hour,
	)

	emailProvider := buildEmailProvider(cfg)

	// Services
	authService := services.NewAuthService(userRepo, tokenRepo, emailProvider, tokenManager, resetTokens, services.AuthConfig{
		ServerBaseURL: cfg.Server.BaseURL,
		FrontendURL:   cfg.Frontend.URL,
	})
	userService := services.NewUserService(userRepo, profileRepo)
	profileService := services.NewProfileService(userRepo, profileRepo, cfg.Frontend.DefaultProfilePicture)
	itemService := services.NewItemService(itemRepo)
	cartService := services.NewCartService(cartRepo, itemRepo)

	// Handlers
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, authService, cfg.Frontend.URL),
		UserHandler:    handlers.NewUserHandler(baseHandler, userService),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, profileService),
		ItemHandler:    handlers.NewItemHandler(baseHandler, itemService),
		CartHandler:    handlers.NewCartHandler(baseHandler, cartService),
	}

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, tokenManager, userRepo)
	return ginRouter
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	default:
		dialector = postgres.Open(cfg.Database.DSN)
	}

	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the repositories depend on.
	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

// buildEmailProvider returns the SMTP provider, or the mock when no SMTP
// host is configured (local development).
func buildEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP host not configured, outgoing email is mocked")
		return &MockEmailProvider{}
	}

	provider, err := email.NewSMTPProvider(email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Fatal("Failed to initialize SMTP provider", "error", err)
	}
	return provider
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
