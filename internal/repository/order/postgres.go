package order

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"shophub/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Insert persists the order and returns it with the server-assigned id and
// creation timestamp. Line items go in as a jsonb snapshot, not foreign keys,
// so catalog changes never touch stored orders.
func (r *postgresRepo) Insert(ctx context.Context, order domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}

	const q = `
INSERT INTO orders (first_name, last_name, email, address, city, state, zip, country, items, total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id::text, created_at
`
	res := order
	err = r.pool.QueryRow(ctx, q,
		order.Customer.FirstName,
		order.Customer.LastName,
		order.Customer.Email,
		order.Customer.Address,
		order.Customer.City,
		order.Customer.State,
		order.Customer.Zip,
		order.Customer.Country,
		items,
		order.Total,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: insert email=%s error=%v", order.Customer.Email, err)
		return nil, err
	}
	r.logger.Printf("order repo: inserted id=%s items=%d total=%.2f", res.ID, len(res.Items), res.Total)
	return &res, nil
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id::text, first_name, last_name, email, address, city, state, zip, country, items, total, created_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var (
			o     domain.Order
			items []byte
		)
		if err := rows.Scan(
			&o.ID,
			&o.Customer.FirstName,
			&o.Customer.LastName,
			&o.Customer.Email,
			&o.Customer.Address,
			&o.Customer.City,
			&o.Customer.State,
			&o.Customer.Zip,
			&o.Customer.Country,
			&items,
			&o.Total,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items for order %s: %w", o.ID, err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}
