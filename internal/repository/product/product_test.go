package product

import (
	"context"
	"errors"
	"os"
	"testing"

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

func TestPostgres_ListAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	for _, p := range []domain.Product{
		{ID: "2", Name: "Smart Watch", Price: 199.99, Category: "Electronics", Rating: 4.3, Reviews: 86},
		{ID: "1", Name: "Wireless Headphones", Price: 79.99, Category: "Electronics", Rating: 4.5, Reviews: 128},
	} {
		if _, err := repo.Upsert(ctx, p); err != nil {
			t.Fatalf("Upsert %s: %v", p.ID, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 products, got %d", len(list))
	}
	// Stable ordering by id regardless of insert order.
	if list[0].ID != "1" || list[1].ID != "2" {
		t.Fatalf("expected id order, got %+v", list)
	}

	got, err := repo.GetByID(ctx, "2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Smart Watch" || got.Price != 199.99 {
		t.Fatalf("unexpected product %+v", got)
	}
}

func TestPostgres_GetUnknown(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgres_UpsertUpdates(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)

	if _, err := repo.Upsert(ctx, domain.Product{ID: "1", Name: "Old Name", Price: 10}); err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}
	if _, err := repo.Upsert(ctx, domain.Product{ID: "1", Name: "New Name", Price: 12.5, Reviews: 3}); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	got, err := repo.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "New Name" || got.Price != 12.5 || got.Reviews != 3 {
		t.Fatalf("unexpected product %+v", got)
	}
}
