package purchase

import (
	"context"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/service"
	"github.com/rs/zerolog"
)

// loggingService wraps a Service so every domain error it raises is logged
// once as a structured record before propagating, unchanged, to the caller.
// Composed explicitly in the router; nothing here intercepts non-domain errors.
type loggingService struct {
	next   Service
	logger zerolog.Logger
}

func NewLoggingService(next Service, logger zerolog.Logger) Service {
	return &loggingService{next: next, logger: logger}
}

func (s *loggingService) Buy(ctx context.Context, customer *domain.Customer, req domain.BuyProductRequest) (*domain.Purchase, error) {
	p, err := s.next.Buy(ctx, customer, req)
	if err != nil {
		return p, service.LogServiceError(s.logger, serviceName, err)
	}
	return p, nil
}

func (s *loggingService) Get(ctx context.Context, customer *domain.Customer, purchaseID string) (*domain.Purchase, error) {
	p, err := s.next.Get(ctx, customer, purchaseID)
	if err != nil {
		return p, service.LogServiceError(s.logger, serviceName, err)
	}
	return p, nil
}

func (s *loggingService) List(ctx context.Context, customer *domain.Customer) ([]domain.Purchase, error) {
	purchases, err := s.next.List(ctx, customer)
	if err != nil {
		return purchases, service.LogServiceError(s.logger, serviceName, err)
	}
	return purchases, nil
}
