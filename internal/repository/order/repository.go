package order

import (
	"context"

	"shophub/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, order domain.Order) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}
