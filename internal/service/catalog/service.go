// Package catalog exposes read-only product queries to the storefront.
package catalog

import (
	"context"

	"shophub/internal/domain"
	productrepo "shophub/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns every product, ordered by id. Filtering and sorting happen
// client-side over the full listing.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
