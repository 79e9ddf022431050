package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"terea-store/internal/category"
	"terea-store/internal/config"
	"terea-store/internal/db"
	"terea-store/internal/handler"
	"terea-store/internal/logger"
	"terea-store/internal/metrics"
	"terea-store/internal/middleware"
	"terea-store/internal/order"
	"terea-store/internal/product"
	"terea-store/internal/user"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Swapped out in tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped with error", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv, cfg.LogLevel)
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.L().Warn("JWT_SECRET is not set; admin login will fail")
	}

	database := initDBFunc(cfg)
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return startServerFunc(ctx, cfg.Addr(), newServer(ctx, cfg, database))
}

// newServer wires repositories, services and the HTTP router.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB) http.Handler {
	productSvc := product.NewService(product.NewRepository(database))
	categorySvc := category.NewService(category.NewRepository(database))
	orderSvc := order.NewService(order.NewRepository(database), &metrics.OrderStats{})
	userSvc := user.NewService(user.NewRepository(database), cfg.JWTSecret, cfg.AdminTokenTTL)

	h := handler.New(productSvc, categorySvc, orderSvc, userSvc, cfg.AppEnv == "production")

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	limiter.StartCleanup(ctx)

	return setupRouter(cfg, h, userSvc, limiter)
}

func setupRouter(
	cfg *config.Config,
	h *handler.Handler,
	authn middleware.Authenticator,
	limiter *middleware.RateLimiter,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(logger.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(limiter.Middleware)

	// Admin routes get a second bucket keyed by admin id.
	h.RegisterRoutes(r, middleware.RequireAdmin(authn), limiter.Middleware)

	return r
}

// startServer serves until ctx is cancelled, then drains in-flight requests.
func startServer(ctx context.Context, addr string, h http.Handler) error {
	log := logger.L()

	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("HTTP server stopped")
	return nil
}
