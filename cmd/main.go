package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/application/alert"
	inboundapp "github.com/muhammadheryan/wms/application/inbound"
	inventoryapp "github.com/muhammadheryan/wms/application/inventory"
	"github.com/muhammadheryan/wms/application/ledger"
	outboundapp "github.com/muhammadheryan/wms/application/outbound"
	productapp "github.com/muhammadheryan/wms/application/product"
	userapp "github.com/muhammadheryan/wms/application/user"
	warehouseapp "github.com/muhammadheryan/wms/application/warehouse"
	"github.com/muhammadheryan/wms/cmd/config"
	redisclient "github.com/muhammadheryan/wms/cmd/redis"
	"github.com/muhammadheryan/wms/cmd/scheduler"
	_ "github.com/muhammadheryan/wms/docs"
	"github.com/muhammadheryan/wms/migration"
	auditRepo "github.com/muhammadheryan/wms/repository/audit"
	inboundRepo "github.com/muhammadheryan/wms/repository/inbound"
	inventoryRepo "github.com/muhammadheryan/wms/repository/inventory"
	outboundRepo "github.com/muhammadheryan/wms/repository/outbound"
	productRepo "github.com/muhammadheryan/wms/repository/product"
	redisRepo "github.com/muhammadheryan/wms/repository/redis"
	stocktakeRepo "github.com/muhammadheryan/wms/repository/stocktake"
	txRepo "github.com/muhammadheryan/wms/repository/tx"
	userRepo "github.com/muhammadheryan/wms/repository/user"
	warehouseRepo "github.com/muhammadheryan/wms/repository/warehouse"
	"github.com/muhammadheryan/wms/thirdparty/carrier"
	"github.com/muhammadheryan/wms/thirdparty/rabbitmq"
	"github.com/muhammadheryan/wms/transport"
	"github.com/muhammadheryan/wms/utils/logger"
	validatorx "github.com/muhammadheryan/wms/utils/validator"
	"go.uber.org/zap"
)

// @title WMS API
// @version 1.0
// @description Warehouse management API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))
	if cfg.Auth.GeneratedSecret {
		logger.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}
	if cfg.Internal.APIKey == "" {
		logger.Warn("INTERNAL_API_KEY not set, internal endpoints are disabled")
	}

	validatorx.Init()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migration.Migrate(ctx, db); err != nil {
		logger.Fatal("err migrate db", zap.Error(err))
	}
	if cfg.Database.Seed {
		if err := migration.Seed(ctx, db); err != nil {
			logger.Fatal("err seed db", zap.Error(err))
		}
	}

	if err := redisclient.New(cfg.Redis); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Stock events are optional; a nil publisher drops them.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer publisher.Close()

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
			"http://localhost:"+cfg.Server.Port, cfg.Internal.APIKey)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository(redisclient.Get())
	ProductRepo := productRepo.NewProductRepository(db)
	WarehouseRepo := warehouseRepo.NewWarehouseRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	AuditRepo := auditRepo.NewAuditRepository(db)
	InboundRepo := inboundRepo.NewInboundRepository(db)
	OutboundRepo := outboundRepo.NewOutboundRepository(db)
	StocktakeRepo := stocktakeRepo.NewStocktakeRepository(db)

	// Initialize application layers
	Ledger := ledger.NewLedger(InventoryRepo, AuditRepo)
	LowStockApp := alert.NewLowStockApp(InventoryRepo)

	handler := transport.NewTransport(&transport.RestHandler{
		UserApp:      userapp.NewUserApp(cfg, UserRepo, RedisRepo),
		ProductApp:   productapp.NewProductApp(ProductRepo, InventoryRepo),
		WarehouseApp: warehouseapp.NewWarehouseApp(WarehouseRepo),
		InventoryApp: inventoryapp.NewInventoryApp(TxRepo, InventoryRepo, AuditRepo, ProductRepo, WarehouseRepo, StocktakeRepo, Ledger, publisher),
		InboundApp:   inboundapp.NewInboundApp(TxRepo, InboundRepo, ProductRepo, WarehouseRepo, Ledger, publisher),
		OutboundApp:  outboundapp.NewOutboundApp(TxRepo, OutboundRepo, ProductRepo, WarehouseRepo, Ledger, carrier.NewSimulated(), publisher),
		LowStockApp:  LowStockApp,
	}, transport.Options{
		CORSOrigins:    cfg.Server.CORSOrigins,
		InternalAPIKey: cfg.Internal.APIKey,
	})

	jobs, err := scheduler.New(LowStockApp, cfg.Scheduler.LowStockScanInterval)
	if err != nil {
		logger.Fatal("err create scheduler", zap.Error(err))
	}
	jobs.Start()
	defer func() {
		_ = jobs.Stop()
	}()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
