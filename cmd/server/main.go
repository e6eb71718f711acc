package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackaholy/Cheminv2.0/config"
	"github.com/jackaholy/Cheminv2.0/internal/auth"
	"github.com/jackaholy/Cheminv2.0/internal/database"
	"github.com/jackaholy/Cheminv2.0/internal/logger"
	"github.com/jackaholy/Cheminv2.0/internal/middleware"
	"github.com/jmoiron/sqlx"

	invH "github.com/jackaholy/Cheminv2.0/internal/inventory/handler"
	invRepoPkg "github.com/jackaholy/Cheminv2.0/internal/inventory/repository"
	invUCPkg "github.com/jackaholy/Cheminv2.0/internal/inventory/usecase"

	searchH "github.com/jackaholy/Cheminv2.0/internal/search/handler"
	searchRepoPkg "github.com/jackaholy/Cheminv2.0/internal/search/repository"
	"github.com/jackaholy/Cheminv2.0/internal/search/synonym"
	searchUCPkg "github.com/jackaholy/Cheminv2.0/internal/search/usecase"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := openDatabase(cfg)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	if cfg.Database.ApplySchema {
		if err := database.ApplySchema(context.Background(), db); err != nil {
			appLogger.Fatal("Could not apply schema", zap.Error(err))
		}
	}

	// 4. Initialize Repositories
	searchRepo := searchRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)

	// 5. Initialize Synonym Lookup (optionally cached in Redis)
	var synonymSource synonym.Source = synonym.NewPubChemClient(synonym.ClientConfig{
		BaseURL:   cfg.Synonym.BaseURL,
		Timeout:   cfg.Synonym.Timeout,
		RateLimit: cfg.Synonym.RateLimit,
		Burst:     cfg.Synonym.Burst,
	})

	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// The cache is optional; lookups keep working without it.
			appLogger.Warn("Could not connect to Redis, synonym cache disabled", zap.Error(err))
		} else {
			synonymSource = synonym.NewCachedSource(synonymSource, redisClient, cfg.Synonym.CacheTTL, appLogger)
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
		cancel()
	}
	synonymResolver := synonym.NewResolver(synonymSource, cfg.Synonym.Timeout, appLogger)

	// 6. Initialize UseCases
	searchUC := searchUCPkg.NewSearchUseCase(searchRepo, synonymResolver, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, appLogger)

	// 7. Start gRPC Server
	grpcPort := normalizePort(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ContextInterceptor(appLogger)),
	)
	searchH.RegisterSearchServer(grpcServer, searchH.NewGRPCHandler(searchUC, appLogger))
	invH.RegisterInventoryServer(grpcServer, invH.NewGRPCHandler(invUC, appLogger))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(searchH.SearchServiceName, healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(invH.InventoryServiceName, healthpb.HealthCheckResponse_SERVING)

	appLogger.Info("Starting gRPC server", zap.String("port", grpcPort))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve gRPC", zap.Error(err))
		}
	}()

	// 8. Start HTTP Server
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(auth.Middleware)

	searchH.NewHTTPHandler(searchUC, appLogger).RegisterRoutes(router)
	invH.NewHTTPHandler(invUC, appLogger).RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())

	httpPort := normalizePort(cfg.Server.HTTPPort)
	httpServer := &http.Server{
		Addr:              httpPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", httpPort))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve HTTP", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		appLogger.Error("HTTP shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.Database.Driver == "sqlite" {
		return database.NewSQLite(cfg.Database.SQLitePath)
	}
	return database.NewPostgres(&database.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
}

func normalizePort(port string) string {
	if !strings.HasPrefix(port, ":") && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
