package customer

import (
	"context"
	"fmt"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/service"
	"github.com/rs/zerolog"
)

const serviceName = "CustomerService"

type Service interface {
	// GetByUser resolves the customer profile attached to a user account.
	GetByUser(ctx context.Context, userID string) (*domain.Customer, error)
	// Credit adds amount to the customer's balance (admin operation).
	Credit(ctx context.Context, customerID string, req domain.CreditCustomerRequest) (*domain.Customer, error)
}

type customerStore interface {
	Get(ctx context.Context, customerID string) (*domain.Customer, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Customer, error)
	AddBalance(ctx context.Context, customerID string, amount int) error
}

type svc struct {
	repo customerStore
}

func NewService(repo customerStore) Service {
	return &svc{repo: repo}
}

func (s *svc) GetByUser(ctx context.Context, userID string) (*domain.Customer, error) {
	c, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound.With(service.Context{
			"user": map[string]any{"id": userID},
		})
	}
	return c, nil
}

func (s *svc) Credit(ctx context.Context, customerID string, req domain.CreditCustomerRequest) (*domain.Customer, error) {
	c, err := s.repo.Get(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound.With(service.Context{
			"customer": map[string]any{"id": customerID},
		})
	}
	if err := s.repo.AddBalance(ctx, customerID, req.Amount); err != nil {
		return nil, err
	}
	c.Balance += req.Amount
	return c, nil
}

// loggingService logs domain errors raised here before they propagate.
type loggingService struct {
	next   Service
	logger zerolog.Logger
}

func NewLoggingService(next Service, logger zerolog.Logger) Service {
	return &loggingService{next: next, logger: logger}
}

func (s *loggingService) GetByUser(ctx context.Context, userID string) (*domain.Customer, error) {
	c, err := s.next.GetByUser(ctx, userID)
	if err != nil {
		return c, service.LogServiceError(s.logger, serviceName, err)
	}
	return c, nil
}

func (s *loggingService) Credit(ctx context.Context, customerID string, req domain.CreditCustomerRequest) (*domain.Customer, error) {
	c, err := s.next.Credit(ctx, customerID, req)
	if err != nil {
		return c, service.LogServiceError(s.logger, serviceName, err)
	}
	return c, nil
}
