package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gowaveline.backend/internal/audit"
	"gowaveline.backend/internal/config"
	"gowaveline.backend/internal/infrastructure/email"
	"gowaveline.backend/internal/infrastructure/pdf"
	"gowaveline.backend/internal/infrastructure/repositories"
	"gowaveline.backend/internal/infrastructure/storage"
	"gowaveline.backend/internal/interfaces/http/handlers"
	"gowaveline.backend/internal/interfaces/http/middleware"
	"gowaveline.backend/internal/usecases"
	"gowaveline.backend/pkg/jwt"
	"gowaveline.backend/pkg/logger"
	"gowaveline.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
		cfg.JWT.MerchantExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	actionLogRepo := repositories.NewActionLogRepository(db)
	fieldEditRepo := repositories.NewFieldEditRepository(db)
	industryRepo := repositories.NewIndustryRepository(db)

	// Initialize infrastructure
	docStore := storage.NewS3Store(storage.S3Config{
		Region:          cfg.Storage.Region,
		Bucket:          cfg.Storage.Bucket,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		Endpoint:        cfg.Storage.Endpoint,
		PublicBaseURL:   cfg.Storage.PublicBaseURL,
	})
	mailSender := email.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	pdfRenderer := pdf.NewRenderer(cfg.PDF.CompanyName)

	// Audit writes go through an async dispatcher so a slow or failing
	// audit table never blocks the admin's action.
	recorder := audit.NewDispatcher(audit.NewRepoRecorder(actionLogRepo, fieldEditRepo))
	defer recorder.Close()

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	appUsecase := usecases.NewApplicationUsecase(appRepo, mailSender, recorder)
	accessUsecase := usecases.NewMerchantAccessUsecase(appRepo, jwtService)
	docUsecase := usecases.NewDocumentUsecase(docRepo, docStore)
	actionUsecase := usecases.NewActionUsecase(appRepo, actionLogRepo, recorder)
	fieldEditUsecase := usecases.NewFieldEditUsecase(appRepo, fieldEditRepo, recorder)
	pdfUsecase := usecases.NewPDFUsecase(industryRepo, pdfRenderer)
	industryUsecase := usecases.NewIndustryUsecase(industryRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	appHandler := handlers.NewApplicationHandler(appUsecase, actionUsecase)
	merchantHandler := handlers.NewMerchantHandler(accessUsecase, appUsecase)
	docHandler := handlers.NewDocumentHandler(docUsecase)
	pdfHandler := handlers.NewPDFHandler(pdfUsecase)
	fieldEditHandler := handlers.NewFieldEditHandler(fieldEditUsecase)
	industryHandler := handlers.NewIndustryHandler(industryUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:      authHandler,
		appHandler:       appHandler,
		merchantHandler:  merchantHandler,
		docHandler:       docHandler,
		pdfHandler:       pdfHandler,
		fieldEditHandler: fieldEditHandler,
		industryHandler:  industryHandler,
		adminAuth:        middleware.AuthMiddleware(jwtService),
		merchantAuth:     middleware.MerchantAuthMiddleware(jwtService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		recorder.Close()
	}()

	// Start server
	log.Printf("🚀 GoWaveline Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
