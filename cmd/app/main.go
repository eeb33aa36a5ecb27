package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cryptovai/tradingjournal/configs"
	"github.com/cryptovai/tradingjournal/internal/database"
	delivery "github.com/cryptovai/tradingjournal/internal/delivery/http"
	"github.com/cryptovai/tradingjournal/internal/domain"
	"github.com/cryptovai/tradingjournal/internal/infra"
	"github.com/cryptovai/tradingjournal/internal/logger"
	"github.com/cryptovai/tradingjournal/internal/middleware"
	"github.com/cryptovai/tradingjournal/internal/repository"
	"github.com/cryptovai/tradingjournal/internal/usecase"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.Auth.JWTSecret == "" {
		zlog.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()

	// Initialize database
	db, err := infra.NewDatabase(ctx, cfg.Database.URL, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, zlog); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	tradeRepo := repository.NewTradeRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	ensureAdminUser(ctx, userRepo, cfg.Auth, zlog)

	// Initialize services
	journalSvc := usecase.NewJournalService(tradeRepo, settingsRepo, zlog)
	adminSvc := usecase.NewAdminService(tradeRepo, userRepo, settingsRepo, zlog)

	// Initialize auth and handlers
	auth := middleware.NewAuth(cfg.Auth.JWTSecret)

	e := echo.New()
	e.HideBanner = true
	delivery.SetupRoutes(e, &delivery.RouterConfig{
		Auth:           auth,
		AuthHandler:    delivery.NewAuthHandler(userRepo, auth),
		JournalHandler: delivery.NewJournalHandler(journalSvc),
		AdminHandler:   delivery.NewAdminHandler(adminSvc),
	})

	// Daily platform stats snapshot
	statsScheduler := infra.NewStatsScheduler(adminSvc, zlog)
	if err := statsScheduler.Start(); err != nil {
		zlog.Fatal("failed to start stats scheduler", zap.Error(err))
	}
	defer statsScheduler.Stop()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("trading journal starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Server.Env),
	)

	srv := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run server in goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited gracefully")
}

// ensureAdminUser creates the bootstrap administrator on first start. When
// no admin password is configured and no admin exists, the service refuses
// to invent one and just logs the gap.
func ensureAdminUser(ctx context.Context, userRepo domain.UserRepository, cfg configs.AuthConfig, zlog *zap.Logger) {
	if _, err := userRepo.GetByEmail(ctx, cfg.AdminEmail); err == nil {
		return
	}

	if cfg.AdminPassword == "" {
		zlog.Warn("no administrator account exists and ADMIN_PASSWORD is not set")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		zlog.Error("failed to hash admin password", zap.Error(err))
		return
	}

	admin := &domain.User{
		ID:           uuid.New(),
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		zlog.Error("failed to create admin user", zap.Error(err))
		return
	}

	zlog.Info("created bootstrap administrator", zap.String("email", admin.Email))
}
