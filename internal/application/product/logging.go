package product

import (
	"context"
	"io"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/service"
	"github.com/rs/zerolog"
)

// loggingService logs domain errors raised by the catalog before they propagate.
type loggingService struct {
	next   Service
	logger zerolog.Logger
}

func NewLoggingService(next Service, logger zerolog.Logger) Service {
	return &loggingService{next: next, logger: logger}
}

func (s *loggingService) log(err error) error {
	return service.LogServiceError(s.logger, serviceName, err)
}

func (s *loggingService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.next.List(ctx)
	if err != nil {
		return products, s.log(err)
	}
	return products, nil
}

func (s *loggingService) Get(ctx context.Context, productID string) (*domain.Product, error) {
	p, err := s.next.Get(ctx, productID)
	if err != nil {
		return p, s.log(err)
	}
	return p, nil
}

func (s *loggingService) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	p, err := s.next.Create(ctx, req)
	if err != nil {
		return p, s.log(err)
	}
	return p, nil
}

func (s *loggingService) Update(ctx context.Context, productID string, req domain.UpdateProductRequest) (*domain.Product, error) {
	p, err := s.next.Update(ctx, productID, req)
	if err != nil {
		return p, s.log(err)
	}
	return p, nil
}

func (s *loggingService) Archive(ctx context.Context, productID string) (*domain.Product, error) {
	p, err := s.next.Archive(ctx, productID)
	if err != nil {
		return p, s.log(err)
	}
	return p, nil
}

func (s *loggingService) Delete(ctx context.Context, productID string) error {
	if err := s.next.Delete(ctx, productID); err != nil {
		return s.log(err)
	}
	return nil
}

func (s *loggingService) UploadImage(ctx context.Context, productID string, r io.Reader, filename, contentType string) (*domain.Product, error) {
	p, err := s.next.UploadImage(ctx, productID, r, filename, contentType)
	if err != nil {
		return p, s.log(err)
	}
	return p, nil
}
