package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cbmpe-api/internal/auth"
	"cbmpe-api/internal/config"
	"cbmpe-api/internal/database"
	"cbmpe-api/internal/handler"
	"cbmpe-api/internal/middleware"
	"cbmpe-api/internal/repository"
	"cbmpe-api/internal/router"
	"cbmpe-api/internal/service"
	"cbmpe-api/internal/validation"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	occurrenceRepo := repository.NewOccurrenceRepository(pool)
	signatureRepo := repository.NewSignatureRepository(pool)
	slog.Info("database ready")

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.JWTTTL)
	validator := validation.New()

	authService := service.NewAuthService(userRepo, hasher, codec)
	authMiddleware := middleware.NewAuthMiddleware(codec)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:       handler.NewAuthHandler(authService, validator),
		User:       handler.NewUserHandler(service.NewUserService(userRepo, hasher), validator),
		Occurrence: handler.NewOccurrenceHandler(service.NewOccurrenceService(occurrenceRepo), validator),
		Signature:  handler.NewSignatureHandler(service.NewSignatureService(signatureRepo, occurrenceRepo), validator),
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.db.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.db.Close()
	slog.Info("server stopped")
	return nil
}
