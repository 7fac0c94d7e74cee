package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Rating      float64
	Reviews     int
	Image       string
}

// Apply inserts the demo catalog. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			ID:          "1",
			Name:        "Wireless Headphones",
			Description: "Over-ear noise cancelling headphones with 30 hour battery life",
			Price:       79.99,
			Category:    "Electronics",
			Rating:      4.5,
			Reviews:     128,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
		},
		{
			ID:          "2",
			Name:        "Smart Watch",
			Description: "Fitness tracking watch with heart rate monitor and GPS",
			Price:       199.99,
			Category:    "Electronics",
			Rating:      4.3,
			Reviews:     86,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30",
		},
		{
			ID:          "3",
			Name:        "Canvas Backpack",
			Description: "Water resistant everyday backpack with laptop sleeve",
			Price:       49.99,
			Category:    "Accessories",
			Rating:      4.7,
			Reviews:     214,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62",
		},
		{
			ID:          "4",
			Name:        "Ceramic Mug Set",
			Description: "Set of four stoneware mugs, dishwasher and microwave safe",
			Price:       24.99,
			Category:    "Home",
			Rating:      4.2,
			Reviews:     57,
			Image:       "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d",
		},
		{
			ID:          "5",
			Name:        "Desk Lamp",
			Description: "Adjustable LED desk lamp with three color temperatures",
			Price:       34.99,
			Category:    "Home",
			Rating:      4.4,
			Reviews:     93,
			Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c",
		},
		{
			ID:          "6",
			Name:        "Running Shoes",
			Description: "Lightweight road running shoes with breathable mesh upper",
			Price:       89.99,
			Category:    "Sports",
			Rating:      4.6,
			Reviews:     171,
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff",
		},
		{
			ID:          "7",
			Name:        "Yoga Mat",
			Description: "Non-slip 6mm exercise mat with carrying strap",
			Price:       29.99,
			Category:    "Sports",
			Rating:      4.1,
			Reviews:     44,
			Image:       "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f",
		},
		{
			ID:          "8",
			Name:        "Leather Wallet",
			Description: "Slim bifold wallet in full grain leather",
			Price:       39.99,
			Category:    "Accessories",
			Rating:      4.8,
			Reviews:     302,
			Image:       "https://images.unsplash.com/photo-1627123424574-724758594e93",
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (id, name, description, price, category, rating, reviews, image)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    category = EXCLUDED.category,
    rating = EXCLUDED.rating,
    reviews = EXCLUDED.reviews,
    image = EXCLUDED.image
`
	_, err := pool.Exec(ctx, q, p.ID, p.Name, p.Description, p.Price, p.Category, p.Rating, p.Reviews, p.Image)
	return err
}
