package main

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/tdnguyen94/stocktrail/internal/adapter/events"
	"github.com/tdnguyen94/stocktrail/internal/adapter/handler"
	"github.com/tdnguyen94/stocktrail/internal/adapter/handler/pb"
	"github.com/tdnguyen94/stocktrail/internal/adapter/storage"
	"github.com/tdnguyen94/stocktrail/internal/config"
	"github.com/tdnguyen94/stocktrail/internal/core/service"
	"github.com/tdnguyen94/stocktrail/internal/port"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Errorf("init logger: %w", err))
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("failed to open mysql", zap.Error(err))
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("failed to ping mysql", zap.Error(err))
	}
	logger.Info("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect redis", zap.Error(err))
	}
	logger.Info("connected to redis")

	// Initialize adapters
	mysqlAdapter := storage.NewMySQLAdapter(db)
	redisAdapter := storage.NewRedisAdapter(rdb)

	var publisher port.EventPublisher
	if cfg.KafkaBroker != "" {
		publisher = events.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
		logger.Info("stock log publishing enabled",
			zap.String("broker", cfg.KafkaBroker),
			zap.String("topic", cfg.KafkaTopic))
	}

	// Initialize services
	inventoryService := service.NewInventoryService(mysqlAdapter, mysqlAdapter, redisAdapter, logger, cfg.QueueSize)
	catalogService := service.NewCatalogService(mysqlAdapter, logger)

	// Start post-commit sync workers
	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			workerLoop(id, inventoryService.GetSyncQueue(), redisAdapter, publisher, logger)
		}(i)
	}
	logger.Info("started sync workers", zap.Int("count", cfg.WorkerCount))

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	pb.RegisterStockLedgerServer(grpcServer, handler.NewGRPCHandler(inventoryService))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(inventoryService, catalogService, logger)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.NewRouter(httpHandler),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")

	// Close sync queue and wait for workers
	inventoryService.Close()
	wg.Wait()
	logger.Info("sync workers stopped")

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close publisher", zap.Error(err))
		}
	}
	rdb.Close()
	db.Close()
	logger.Info("connections closed")
}

// workerLoop drains committed mutations: refresh the cache mirror, then stream
// the audit record. Both legs are best-effort; the ledger already committed.
func workerLoop(id int, queue <-chan service.SyncJob, cache port.CacheRepository, publisher port.EventPublisher, logger *zap.Logger) {
	for job := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := cache.SetQuantity(ctx, job.Record.WarehouseID, job.Record.ProductID, job.Quantity); err != nil {
			logger.Warn("cache refresh failed",
				zap.Int("worker", id),
				zap.Int64("warehouse_id", job.Record.WarehouseID),
				zap.Int64("product_id", job.Record.ProductID),
				zap.Error(err))
		}

		if publisher != nil {
			if err := publisher.PublishStockLog(ctx, job.Record); err != nil {
				logger.Warn("stock log publish failed",
					zap.Int("worker", id),
					zap.Int64("log_id", job.Record.ID),
					zap.Error(err))
			}
		}

		cancel()
	}
}
