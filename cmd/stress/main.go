package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tdnguyen94/stocktrail/internal/adapter/storage"
	"github.com/tdnguyen94/stocktrail/internal/core/domain"
	"github.com/tdnguyen94/stocktrail/internal/core/service"
)

const (
	mysqlDSN      = "root:root@tcp(localhost:3306)/stocktrail?parseTime=true"
	redisAddr     = "localhost:6379"
	totalRequests = 200
	queueSize     = 1000
)

func main() {
	ctx := context.Background()

	// Initialize MySQL
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		log.Fatalf("failed to open mysql: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	// Seed an isolated tenant so reruns never collide
	principalID, productID := seedTenant(ctx, db)

	mysqlAdapter := storage.NewMySQLAdapter(db)
	redisAdapter := storage.NewRedisAdapter(rdb)

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	inventoryService := service.NewInventoryService(mysqlAdapter, mysqlAdapter, redisAdapter, logger, queueSize)
	defer inventoryService.Close()

	// Drain the sync queue in background
	go func() {
		for range inventoryService.GetSyncQueue() {
		}
	}()

	principal := domain.Principal{ID: principalID}

	// Spawn concurrent mutations with signed deltas and track the expected sum
	var successCount atomic.Int32
	var failCount atomic.Int32
	var expectedSum atomic.Int64

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			delta := int64(rand.Intn(10) + 1)
			if rand.Intn(2) == 0 {
				delta = -delta
			}

			_, err := inventoryService.ApplyDelta(ctx, principal, productID, delta, uuid.NewString())
			if err == nil {
				successCount.Add(1)
				expectedSum.Add(delta)
			} else {
				failCount.Add(1)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if fail > 0 {
		fmt.Printf("FAIL: %d mutations were rejected\n", fail)
	} else {
		fmt.Println("PASS: all mutations committed")
	}

	// Verify the ledger quantity equals the sum of applied deltas
	var finalQuantity int64
	err = db.QueryRowContext(ctx,
		"SELECT quantity FROM inventory WHERE product_id = ?", productID).Scan(&finalQuantity)
	if err != nil {
		log.Fatalf("failed to read final quantity: %v", err)
	}

	fmt.Printf("Final Quantity:   %d (expected %d)\n", finalQuantity, expectedSum.Load())
	if finalQuantity == expectedSum.Load() {
		fmt.Println("PASS: no lost updates")
	} else {
		fmt.Println("FAIL: ledger quantity diverged from applied deltas")
	}

	// Verify the audit trail reconciles against the ledger
	var auditSum sql.NullInt64
	var auditCount int64
	err = db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(quantity_change), 0), COUNT(*) FROM stock_logs WHERE product_id = ?",
		productID).Scan(&auditSum, &auditCount)
	if err != nil {
		log.Fatalf("failed to read audit records: %v", err)
	}

	fmt.Printf("Audit Records:    %d, delta sum %d\n", auditCount, auditSum.Int64)
	if auditSum.Int64 == finalQuantity && auditCount == int64(success) {
		fmt.Println("PASS: audit trail reconciles with ledger")
	} else {
		fmt.Println("FAIL: audit trail does not reconcile with ledger")
	}
}

// seedTenant creates a fresh user, warehouse, category, and product so each run
// operates on its own rows.
func seedTenant(ctx context.Context, db *sql.DB) (principalID, productID int64) {
	suffix := uuid.NewString()[:8]

	res, err := db.ExecContext(ctx,
		"INSERT INTO users (username) VALUES (?)", "stress-"+suffix)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	principalID, _ = res.LastInsertId()

	res, err = db.ExecContext(ctx,
		"INSERT INTO warehouses (owner_user_id, name, location) VALUES (?, ?, ?)",
		principalID, "stress-warehouse-"+suffix, "test")
	if err != nil {
		log.Fatalf("failed to seed warehouse: %v", err)
	}
	warehouseID, _ := res.LastInsertId()

	res, err = db.ExecContext(ctx,
		"INSERT INTO categories (warehouse_id, name) VALUES (?, ?)",
		warehouseID, "stress-category")
	if err != nil {
		log.Fatalf("failed to seed category: %v", err)
	}
	categoryID, _ := res.LastInsertId()

	res, err = db.ExecContext(ctx,
		"INSERT INTO products (category_id, name, sku) VALUES (?, ?, ?)",
		categoryID, "stress-product", "STRESS-"+suffix)
	if err != nil {
		log.Fatalf("failed to seed product: %v", err)
	}
	productID, _ = res.LastInsertId()

	return principalID, productID
}
