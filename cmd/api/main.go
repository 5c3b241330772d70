package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-backoffice-service/config"
	"github.com/fekuna/omnipos-backoffice-service/pkg/broker"
	"github.com/fekuna/omnipos-backoffice-service/pkg/cache"
	"github.com/fekuna/omnipos-backoffice-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-backoffice-service/pkg/httpserver"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
	"github.com/fekuna/omnipos-backoffice-service/pkg/search"

	catalogRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/catalog/repository"
	catalogUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/catalog/usecase"

	partyRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/party/repository"
	partyUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/party/usecase"

	discountRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/discount/repository"
	discountUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/discount/usecase"

	productRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/product/repository"
	productUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/product/usecase"

	expenseRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/expense/repository"
	expenseUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/expense/usecase"

	invListenerPkg "github.com/fekuna/omnipos-backoffice-service/internal/inventory/listener"
	invRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/inventory/usecase"

	orderRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/order/usecase"

	purchaseRepoPkg "github.com/fekuna/omnipos-backoffice-service/internal/purchase/repository"
	purchaseUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/purchase/usecase"

	dashboardUCPkg "github.com/fekuna/omnipos-backoffice-service/internal/dashboard/usecase"

	"github.com/fekuna/omnipos-backoffice-service/internal/server"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
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
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 3.5 Run Migrations
	if err := goose.SetDialect("postgres"); err != nil {
		appLogger.Fatal("Could not set migration dialect", zap.Error(err))
	}
	if err := goose.Up(db.DB, cfg.Postgres.MigrationsDir); err != nil {
		appLogger.Fatal("Could not run migrations", zap.Error(err))
	}
	appLogger.Info("Migrations up to date")

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 4.5 Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 4.8 Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (search falls back to the database)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 5. Initialize Repositories
	catalogRepo := catalogRepoPkg.NewPGRepository(db)
	partyRepo := partyRepoPkg.NewPGRepository(db)
	discountRepo := discountRepoPkg.NewPGRepository(db)
	productRepo := productRepoPkg.NewPGRepository(db)
	expenseRepo := expenseRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)
	purchaseRepo := purchaseRepoPkg.NewPGRepository(db)

	// 6. Initialize UseCases
	catalogUC := catalogUCPkg.NewCatalogUseCase(catalogRepo, appLogger)
	partyUC := partyUCPkg.NewPartyUseCase(partyRepo, appLogger)
	discountUC := discountUCPkg.NewDiscountUseCase(discountRepo, appLogger)
	productUC := productUCPkg.NewProductUseCase(productRepo, redisClient, esClient, appLogger)
	expenseUC := expenseUCPkg.NewExpenseUseCase(expenseRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, redisClient, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, appLogger)
	purchaseUC := purchaseUCPkg.NewPurchaseUseCase(purchaseRepo, appLogger)
	dashboardUC := dashboardUCPkg.NewDashboardUseCase(orderRepo, expenseRepo, invRepo, appLogger)

	// 6.5 Start Listeners
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	invListener := invListenerPkg.NewInventoryListener(kafkaConsumer, invUC, appLogger)
	go invListener.Start(ctx)

	// 7. Start HTTP Server
	mux := server.NewRouter(server.Deps{
		Catalog:   catalogUC,
		Party:     partyUC,
		Discounts: discountUC,
		Products:  productUC,
		Expenses:  expenseUC,
		Inventory: invUC,
		Orders:    orderUC,
		Purchases: purchaseUC,
		Dashboard: dashboardUC,
		Logger:    appLogger,
	})

	srv := httpserver.New(cfg.Server.HTTPAddr, mux, cfg.Server.ExposeMetrics)

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
