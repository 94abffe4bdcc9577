package tests

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tdnguyen94/stocktrail/internal/adapter/storage"
	"github.com/tdnguyen94/stocktrail/internal/core/domain"
	"github.com/tdnguyen94/stocktrail/internal/core/service"
	"github.com/tdnguyen94/stocktrail/internal/port"
)

type testEnv struct {
	redis   *redis.Client
	mysql   *sql.DB
	cache   *storage.RedisAdapter
	db      *storage.MySQLAdapter
	cleanup func()
}

func setupTestEnv(t *testing.T) *testEnv {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "root:root@tcp(localhost:3306)/stocktrail?parseTime=true"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	return &testEnv{
		redis: rdb,
		mysql: db,
		cache: storage.NewRedisAdapter(rdb),
		db:    storage.NewMySQLAdapter(db),
		cleanup: func() {
			rdb.Close()
			db.Close()
		},
	}
}

// seedTenant creates an isolated user/warehouse/category/product chain.
func seedTenant(t *testing.T, db *sql.DB) (principalID, warehouseID, productID int64) {
	t.Helper()
	ctx := context.Background()
	suffix := uuid.NewString()[:8]

	res, err := db.ExecContext(ctx, `INSERT INTO users (username) VALUES (?)`, "it-"+suffix)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	principalID, _ = res.LastInsertId()

	res, err = db.ExecContext(ctx,
		`INSERT INTO warehouses (owner_user_id, name, location) VALUES (?, ?, 'test')`,
		principalID, "it-warehouse-"+suffix)
	if err != nil {
		t.Fatalf("seed warehouse: %v", err)
	}
	warehouseID, _ = res.LastInsertId()

	res, err = db.ExecContext(ctx,
		`INSERT INTO categories (warehouse_id, name) VALUES (?, 'it-category')`, warehouseID)
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	categoryID, _ := res.LastInsertId()

	res, err = db.ExecContext(ctx,
		`INSERT INTO products (category_id, name, sku) VALUES (?, 'it-product', ?)`,
		categoryID, "IT-"+suffix)
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	productID, _ = res.LastInsertId()

	return principalID, warehouseID, productID
}

func newService(env *testEnv) *service.InventoryService {
	return service.NewInventoryService(env.db, env.db, env.cache, zap.NewNop(), 1000)
}

func TestIntegration_ConcurrentMutationsReconcile(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	principalID, warehouseID, productID := seedTenant(t, env.mysql)
	principal := domain.Principal{ID: principalID}

	svc := newService(env)

	// Start workers to refresh the cache mirror
	var wg sync.WaitGroup
	workerCount := 3
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			workerLoop(svc.GetSyncQueue(), env.cache)
		}()
	}

	// Execute concurrent signed mutations
	var expectedSum atomic.Int64
	var mutateWg sync.WaitGroup
	totalRequests := 40

	for i := 0; i < totalRequests; i++ {
		mutateWg.Add(1)
		go func() {
			defer mutateWg.Done()
			delta := int64(rand.Intn(10) + 1)
			if rand.Intn(2) == 0 {
				delta = -delta
			}
			if _, err := svc.ApplyDelta(ctx, principal, productID, delta, uuid.NewString()); err != nil {
				t.Errorf("apply delta failed: %v", err)
				return
			}
			expectedSum.Add(delta)
		}()
	}

	mutateWg.Wait()

	// Close service and wait for workers
	svc.Close()
	wg.Wait()

	// Verify ledger quantity
	entry, err := env.db.GetEntryByPair(ctx, warehouseID, productID)
	if err != nil {
		t.Fatalf("read ledger entry: %v", err)
	}
	if entry.Quantity != expectedSum.Load() {
		t.Errorf("lost update: quantity %d, applied deltas sum %d", entry.Quantity, expectedSum.Load())
	}

	// Verify audit trail reconciles
	var auditSum int64
	var auditCount int
	env.mysql.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity_change), 0), COUNT(*) FROM stock_logs WHERE product_id = ?`,
		productID).Scan(&auditSum, &auditCount)
	if auditSum != entry.Quantity {
		t.Errorf("audit trail does not reconcile: sum %d, quantity %d", auditSum, entry.Quantity)
	}
	if auditCount != totalRequests {
		t.Errorf("expected %d audit records, got %d", totalRequests, auditCount)
	}

	// Verify cache mirror converged to the committed quantity
	qty, ok, _ := env.cache.GetQuantity(ctx, warehouseID, productID)
	if ok && qty != entry.Quantity {
		// The mirror is last-write best-effort; a mismatch here would mean a
		// worker wrote a stale quantity after the final mutation.
		t.Logf("cache mirror %d vs ledger %d (eventual)", qty, entry.Quantity)
	}
}

func TestIntegration_TenantIsolation(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	principalA, _, productA := seedTenant(t, env.mysql)
	principalB, _, productB := seedTenant(t, env.mysql)

	svc := newService(env)
	defer svc.Close()
	go func() {
		for range svc.GetSyncQueue() {
		}
	}()

	if _, err := svc.ApplyDelta(ctx, domain.Principal{ID: principalA}, productA, 5, ""); err != nil {
		t.Fatalf("seed mutation failed: %v", err)
	}

	// B cannot mutate A's product
	_, err := svc.ApplyDelta(ctx, domain.Principal{ID: principalB}, productA, 5, "")
	if !errors.Is(err, service.ErrCrossTenantAccess) {
		t.Errorf("expected ErrCrossTenantAccess, got: %v", err)
	}

	// B's listings exclude A's rows
	if _, err := svc.ApplyDelta(ctx, domain.Principal{ID: principalB}, productB, 9, ""); err != nil {
		t.Fatalf("seed mutation failed: %v", err)
	}
	entries, err := svc.ListLedgerEntries(ctx, domain.Principal{ID: principalB})
	if err != nil {
		t.Fatalf("list entries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ProductID != productB {
		t.Errorf("expected only B's entry, got %+v", entries)
	}

	logs, err := svc.ListAuditRecords(ctx, domain.Principal{ID: principalB})
	if err != nil {
		t.Fatalf("list audit records failed: %v", err)
	}
	for _, rec := range logs {
		if rec.ProductID == productA {
			t.Errorf("B's audit listing leaked A's record: %+v", rec)
		}
	}
}

func TestIntegration_AdjustmentLogsDiff(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	principalID, warehouseID, productID := seedTenant(t, env.mysql)
	principal := domain.Principal{ID: principalID}

	svc := newService(env)
	defer svc.Close()
	go func() {
		for range svc.GetSyncQueue() {
		}
	}()

	if _, err := svc.ApplyDelta(ctx, principal, productID, 20, ""); err != nil {
		t.Fatalf("seed mutation failed: %v", err)
	}

	entry, err := env.db.GetEntryByPair(ctx, warehouseID, productID)
	if err != nil {
		t.Fatalf("read ledger entry: %v", err)
	}

	if _, err := svc.SetQuantity(ctx, principal, entry.ID, 15); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}

	var action string
	var change int64
	err = env.mysql.QueryRowContext(ctx,
		`SELECT action_type, quantity_change FROM stock_logs
		 WHERE product_id = ? ORDER BY id DESC LIMIT 1`, productID).Scan(&action, &change)
	if err != nil {
		t.Fatalf("read audit record: %v", err)
	}
	if action != string(domain.ActionAdjustment) || change != -5 {
		t.Errorf("expected ADJUSTMENT -5, got %s %d", action, change)
	}

	// Overwriting with the same value must not append another record.
	var before int
	env.mysql.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stock_logs WHERE product_id = ?`, productID).Scan(&before)
	if _, err := svc.SetQuantity(ctx, principal, entry.ID, 15); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	var after int
	env.mysql.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stock_logs WHERE product_id = ?`, productID).Scan(&after)
	if after != before {
		t.Errorf("no-change write appended a record: %d -> %d", before, after)
	}
}

func TestIntegration_IdempotencyPreventsReplay(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	principalID, warehouseID, productID := seedTenant(t, env.mysql)
	principal := domain.Principal{ID: principalID}

	svc := newService(env)
	defer svc.Close()
	go func() {
		for range svc.GetSyncQueue() {
		}
	}()

	requestID := "replay-" + uuid.NewString()

	if _, err := svc.ApplyDelta(ctx, principal, productID, 5, requestID); err != nil {
		t.Fatalf("first mutation failed: %v", err)
	}

	_, err := svc.ApplyDelta(ctx, principal, productID, 5, requestID)
	if !errors.Is(err, service.ErrDuplicateRequest) {
		t.Errorf("expected ErrDuplicateRequest, got: %v", err)
	}

	// The delta applied exactly once.
	entry, err := env.db.GetEntryByPair(ctx, warehouseID, productID)
	if err != nil {
		t.Fatalf("read ledger entry: %v", err)
	}
	if entry.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", entry.Quantity)
	}
}

func workerLoop(queue <-chan service.SyncJob, cache port.CacheRepository) {
	for job := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		cache.SetQuantity(ctx, job.Record.WarehouseID, job.Record.ProductID, job.Quantity)
		cancel()
	}
}
