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

	"token-market.backend/internal/config"
	"token-market.backend/internal/infrastructure/jobs"
	"token-market.backend/internal/infrastructure/kravata"
	"token-market.backend/internal/infrastructure/repositories"
	"token-market.backend/internal/interfaces/http/handlers"
	"token-market.backend/internal/interfaces/http/middleware"
	"token-market.backend/internal/usecases"
	"token-market.backend/pkg/jwt"
	"token-market.backend/pkg/logger"
	"token-market.backend/pkg/redis"
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
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	// JWT service
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Kravata client
	kravataClient := kravata.NewClient(cfg.Kravata.BaseURL, cfg.Kravata.APIKey, cfg.Kravata.Timeout)

	// Repositories
	tokenRepo := repositories.NewTokenRepository(db)
	sellerRepo := repositories.NewSellerRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	ticketRepo := repositories.NewSupportTicketRepository(db)
	webhookEventRepo := repositories.NewWebhookEventRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	tokenUsecase := usecases.NewTokenUsecase(tokenRepo)
	offerUsecase := usecases.NewOfferUsecase(offerRepo, sellerRepo, tokenRepo, uow)
	purchaseUsecase := usecases.NewPurchaseUsecase(offerRepo, orderRepo, uow, kravataClient)
	webhookUsecase := usecases.NewWebhookUsecase(orderRepo, offerRepo, webhookEventRepo, uow)
	walletUsecase := usecases.NewWalletUsecase(kravataClient)
	supportUsecase := usecases.NewSupportUsecase(ticketRepo)
	authUsecase := usecases.NewAuthUsecase(kravataClient, jwtService, cfg.Admin.Username, cfg.Admin.PasswordHash)

	// Handlers
	tokenHandler := handlers.NewTokenHandler(tokenUsecase)
	offerHandler := handlers.NewOfferHandler(offerUsecase)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseUsecase)
	orderHandler := handlers.NewOrderHandler(purchaseUsecase)
	webhookHandler := handlers.NewWebhookHandler(webhookUsecase)
	walletHandler := handlers.NewWalletHandler(walletUsecase, kravataClient)
	supportHandler := handlers.NewSupportHandler(supportUsecase)
	authHandler := handlers.NewAuthHandler(authUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)
	webhookAuth := middleware.WebhookAuthMiddleware(cfg.Kravata.WebhookKey)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewOrderExpiryJob(orderRepo, offerRepo, uow, cfg.Jobs.SweepInterval, cfg.Jobs.PendingOrderTTL)
	go expiryJob.Start(ctx)

	// Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		tokenHandler:    tokenHandler,
		offerHandler:    offerHandler,
		purchaseHandler: purchaseHandler,
		orderHandler:    orderHandler,
		webhookHandler:  webhookHandler,
		walletHandler:   walletHandler,
		supportHandler:  supportHandler,
		authHandler:     authHandler,
		authMiddleware:  authMiddleware,
		webhookAuth:     webhookAuth,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	log.Printf("Token market backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
