package order

import (
	"context"
	"os"
	"testing"
	"time"

	"shophub/internal/domain"
	"shophub/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE orders, products`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func sampleOrder() domain.Order {
	return domain.Order{
		Customer: domain.Customer{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Address:   "1 Main St",
			City:      "Springfield",
			State:     "IL",
			Zip:       "62701",
			Country:   "USA",
		},
		Items: []domain.OrderItem{
			{ProductID: "1", Name: "Wireless Headphones", Price: 20.00, Quantity: 2},
			{ProductID: "2", Name: "Smart Watch", Price: 15.00, Quantity: 1},
		},
		Total: 60.50,
	}
}

func TestPostgres_InsertAndList(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	stored, err := repo.Insert(ctx, sampleOrder())
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if stored.ID == "" {
		t.Fatalf("expected server-assigned id")
	}
	if stored.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}

	list, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 order, got %d", len(list))
	}
	got := list[0]
	if got.ID != stored.ID || got.Total != 60.50 {
		t.Fatalf("unexpected order %+v", got)
	}
	if len(got.Items) != 2 || got.Items[0].Name != "Wireless Headphones" || got.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", got.Items)
	}
	if got.Customer.Email != "jane@example.com" {
		t.Fatalf("unexpected customer %+v", got.Customer)
	}
}

func TestPostgres_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	first, err := repo.Insert(ctx, sampleOrder())
	if err != nil {
		t.Fatalf("Insert first: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	second, err := repo.Insert(ctx, sampleOrder())
	if err != nil {
		t.Fatalf("Insert second: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("identical submissions must create distinct orders")
	}

	list, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(list))
	}
	if list[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}
}

func TestPostgres_InsertRejectsEmptyFields(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	bad := sampleOrder()
	bad.Customer.Email = ""
	if _, err := repo.Insert(ctx, bad); err == nil {
		t.Fatalf("expected check constraint violation")
	}

	list, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no partial order, got %d", len(list))
	}
}
