package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"keystone-site/internal/ai"
	"keystone-site/internal/authutils"
	"keystone-site/internal/config"
	"keystone-site/internal/database"
	"keystone-site/internal/handler"
	"keystone-site/internal/logger"
	"keystone-site/internal/messaging"
	"keystone-site/internal/middleware"
	"keystone-site/internal/repository"
	"keystone-site/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

const (
	serviceName       = "keystone-site"
	connectMaxRetries = 30
	connectRetryDelay = 3 * time.Second
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger ---
	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Encoding:    cfg.LogFormat,
		OutputPath:  cfg.LogOutput,
		Service:     serviceName,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)
	log.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("ai_client", cfg.AIClientType),
		zap.String("ai_model", cfg.AIModel),
	)

	ctx := context.Background()

	// --- PostgreSQL ---
	pool, err := database.ConnectPostgres(ctx, database.PoolConfig{
		DSN:             cfg.GetDSN(),
		MaxConns:        int32(cfg.DBMaxConns),
		MaxConnIdleTime: cfg.DBIdleTimeout,
		MaxRetries:      connectMaxRetries,
		RetryDelay:      connectRetryDelay,
	}, log.Named("Postgres"))
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pool.Close()

	if err := database.NewMigrator(pool, log).Up(ctx); err != nil {
		log.Fatal("Failed to apply database migrations", zap.Error(err))
	}

	// --- RabbitMQ ---
	mqConn, err := messaging.ConnectRabbitMQ(ctx, cfg.RabbitMQURL, connectMaxRetries, connectRetryDelay, log.Named("RabbitMQ"))
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
	}
	defer mqConn.Close()

	publisher, err := messaging.NewRabbitMQQuotePublisher(mqConn, cfg.QuoteEventExchange, log)
	if err != nil {
		log.Fatal("Failed to create quote publisher", zap.Error(err))
	}
	defer publisher.Close()

	// --- Rate limiter ---
	rateLimitCfg := middleware.RateLimitConfig{
		Rate:  time.Minute,
		Limit: cfg.RateLimitPerMinute,
	}
	if cfg.RedisAddr != "" {
		redisClient, err := setupRedis(ctx, cfg, log.Named("Redis"))
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		rateLimitCfg.RedisClient = redisClient
	} else {
		log.Warn("REDIS_ADDR not set, rate limiter uses in-memory store")
	}
	rateLimiter := middleware.NewRateLimiter(rateLimitCfg, log)

	// --- Dependency Injection ---
	planGenerator, err := ai.NewPlanGenerator(cfg, log)
	if err != nil {
		log.Fatal("Failed to create plan generator", zap.Error(err))
	}

	verifier, err := authutils.NewInterServiceVerifier(cfg.InterServiceSecret, log)
	if err != nil {
		log.Fatal("Failed to create inter-service token verifier", zap.Error(err))
	}
	internalAuth := middleware.InterServiceAuth(verifier, log)

	quoteRepo := repository.NewPgQuoteRepository(pool, log)
	quoteService := service.NewQuoteService(quoteRepo, publisher, log)
	siteHandler := handler.NewSiteHandler(planGenerator, quoteService, cfg.Brand, log)

	// --- HTTP Server Setup (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	}

	router, err := newRouter(cfg, log, ginprometheus.NewPrometheus("gin"), siteHandler, rateLimiter, internalAuth)
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.Info("Starting HTTP server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Shutting down server...", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

// setupRedis создает клиента Redis для rate limiter'а и ждет, пока он ответит на PING.
func setupRedis(ctx context.Context, cfg *config.Config, log *zap.Logger) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	log.Info("Attempting to connect to Redis", zap.String("address", opts.Addr), zap.Int("db", opts.DB))

	var lastErr error
	for attempt := 1; attempt <= connectMaxRetries; attempt++ {
		client := redis.NewClient(opts)
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err := client.Ping(pingCtx).Err()
		pingCancel()
		if err == nil {
			log.Info("Successfully connected to Redis", zap.Int("attempt", attempt))
			return client, nil
		}

		_ = client.Close()
		lastErr = err
		log.Warn("Redis ping failed, retrying...",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", connectMaxRetries),
			zap.Error(err),
		)
		if attempt < connectMaxRetries {
			time.Sleep(connectRetryDelay)
		}
	}
	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", connectMaxRetries, lastErr)
}
