// Package order handles order submission: validate, persist, then hand the
// stored order to the notification dispatcher without waiting on it.
package order

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"shophub/internal/domain"
)

type repository interface {
	Insert(ctx context.Context, order domain.Order) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}

// Notifier receives persisted orders for confirmation delivery. Enqueue must
// not block and its outcome never affects the submission result.
type Notifier interface {
	Enqueue(order domain.Order)
}

type Service struct {
	repo     repository
	notifier Notifier
	logger   *log.Logger
}

func New(repo repository, notifier Notifier, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

// SubmitInput is the order payload sent by the checkout page. Items are the
// client's snapshot of its cart lines; total includes tax.
type SubmitInput struct {
	Customer domain.Customer    `json:"customer" binding:"required"`
	Items    []domain.OrderItem `json:"items" binding:"required,min=1,dive"`
	Total    float64            `json:"total" binding:"required,gt=0"`
}

// Submit validates the payload, persists the order and schedules the
// confirmation email. Two identical submissions create two distinct orders;
// there is no idempotency key.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.Order, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	stored, err := s.repo.Insert(ctx, domain.Order{
		Customer: in.Customer,
		Items:    in.Items,
		Total:    in.Total,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Printf("new order received id=%s email=%s total=%.2f", stored.ID, stored.Customer.Email, stored.Total)

	// Fire-and-forget: a failed or dropped notification never rolls back the
	// order or changes the response.
	if s.notifier != nil {
		s.notifier.Enqueue(*stored)
	}

	return stored, nil
}

// List returns all stored orders, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

func validate(in SubmitInput) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"firstName", in.Customer.FirstName},
		{"lastName", in.Customer.LastName},
		{"email", in.Customer.Email},
		{"address", in.Customer.Address},
		{"city", in.Customer.City},
		{"state", in.Customer.State},
		{"zip", in.Customer.Zip},
		{"country", in.Customer.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing customer fields %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: order has no items", domain.ErrValidation)
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Name == "" {
			return fmt.Errorf("%w: item missing id or name", domain.ErrValidation)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %s has quantity %d", domain.ErrValidation, item.ProductID, item.Quantity)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item %s has negative price", domain.ErrValidation, item.ProductID)
		}
	}
	if in.Total <= 0 {
		return fmt.Errorf("%w: total must be positive", domain.ErrValidation)
	}
	return nil
}
