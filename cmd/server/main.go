package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/usecase"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/config"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/http/handler"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/http/middleware"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/persistence/postgres"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/service/logger"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/service/password"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/service/ratelimit"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/service/token"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	structuredLogger := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "book-api",
	})
	structuredLogger.Info(ctx, "Application starting", map[string]interface{}{
		"env": cfg.Environment,
	})

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		structuredLogger.Error(ctx, "Failed to ping database", err, nil)
		log.Fatalf("Failed to ping database: %v", err)
	}
	structuredLogger.Info(ctx, "Database connection established", nil)

	limiter, err := ratelimit.NewService(ratelimit.Config{
		Enabled:       cfg.RateLimitEnabled,
		RedisURL:      cfg.RedisURL,
		Attempts:      cfg.RateLimitAttempts,
		Window:        cfg.RateLimitWindow,
		BlockDuration: cfg.RateLimitBlockDuration,
	}, logrus.New())
	if err != nil {
		structuredLogger.Error(ctx, "Failed to initialize rate limiter", err, map[string]interface{}{
			"redis_url": cfg.RedisURL,
		})
		log.Fatalf("Failed to initialize rate limiter: %v", err)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	authorRepo := postgres.NewAuthorRepository(db)

	// Services
	tokenService, err := token.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}
	passwordService := password.NewBcryptPasswordService(cfg.BcryptCost)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, tokenService, passwordService, structuredLogger)
	bookUseCase := usecase.NewBookUseCase(bookRepo)
	authorUseCase := usecase.NewAuthorUseCase(authorRepo)
	userManagementUseCase := usecase.NewUserManagementUseCase(userRepo, passwordService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(
		limiter, structuredLogger, cfg.RateLimitAttempts, cfg.RateLimitWindow, cfg.RateLimitBlockDuration)

	// Handlers and routes
	router := mux.NewRouter()
	handler.NewAuthHandler(authUseCase, authMiddleware, rateLimitMiddleware).RegisterRoutes(router)
	handler.NewBookHandler(bookUseCase, authMiddleware).RegisterRoutes(router)
	handler.NewAuthorHandler(authorUseCase, authMiddleware).RegisterRoutes(router)
	handler.NewUserHandler(userManagementUseCase, authMiddleware).RegisterRoutes(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"ok"}`)
	}).Methods("GET")

	// Middleware chain, outermost first
	var h http.Handler = router
	h = middleware.Recovery(structuredLogger)(h)
	h = middleware.RequestLogging(structuredLogger)(h)
	if cfg.CORSEnabled {
		h = middleware.CORS(h, cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials)
	}
	h = middleware.CorrelationID(h)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		structuredLogger.Info(ctx, "Starting server", map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			structuredLogger.Error(ctx, "Server failed to start", err, nil)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	structuredLogger.Info(ctx, "Shutting down server...", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		structuredLogger.Error(ctx, "Server forced to shutdown", err, nil)
	}
	structuredLogger.Info(ctx, "Server exited", nil)
}
