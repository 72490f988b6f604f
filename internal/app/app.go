// Package app wires configuration, storage, services and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/pinboard-backend/internal/adapter/postgres"
	boardrepo "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/board"
	likerepo "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/like"
	pinrepo "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/pin"
	userrepo "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/pinboard-backend/internal/auth"
	"github.com/heartmarshall/pinboard-backend/internal/config"
	authsvc "github.com/heartmarshall/pinboard-backend/internal/service/auth"
	boardsvc "github.com/heartmarshall/pinboard-backend/internal/service/board"
	likesvc "github.com/heartmarshall/pinboard-backend/internal/service/like"
	membershipsvc "github.com/heartmarshall/pinboard-backend/internal/service/membership"
	pinsvc "github.com/heartmarshall/pinboard-backend/internal/service/pin"
	"github.com/heartmarshall/pinboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/pinboard-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph and serves HTTP until the context
// is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories
	users := userrepo.New(pool)
	pins := pinrepo.New(pool)
	boards := boardrepo.New(pool)
	likes := likerepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth.PasswordHashCost)
	pinService := pinsvc.NewService(logger, pins, likes, boards, txManager)
	boardService := boardsvc.NewService(logger, boards)
	membershipService := membershipsvc.NewService(logger, boards, pins, txManager)
	likeService := likesvc.NewService(logger, pins, likes)

	// HTTP surface
	mux := rest.NewRouter(rest.Router{
		Auth:   rest.NewAuthHandler(authService, logger),
		Pins:   rest.NewPinsHandler(pinService, likeService, logger),
		Boards: rest.NewBoardsHandler(boardService, membershipService, logger),
		Health: rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
