package product

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/id"
	"github.com/go-shop-api/internal/pkg/service"
)

const serviceName = "ProductService"

// DynamoDB attribute names used in partial update maps.
const (
	fieldTitle    = "title"
	fieldPrice    = "price"
	fieldCount    = "count"
	fieldStatus   = "status"
	fieldImageKey = "image_key"
)

// presignTTL bounds how long catalog image links stay valid.
const presignTTL = 15 * time.Minute

type Service interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	Update(ctx context.Context, productID string, req domain.UpdateProductRequest) (*domain.Product, error)
	Archive(ctx context.Context, productID string) (*domain.Product, error)
	Delete(ctx context.Context, productID string) error // hard delete
	UploadImage(ctx context.Context, productID string, r io.Reader, filename, contentType string) (*domain.Product, error)
}

type productStore interface {
	Put(ctx context.Context, p *domain.Product) error
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Scan(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, productID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, productID string) error
}

type imageStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type svc struct {
	repo   productStore
	images imageStore // may be nil
}

func NewService(repo productStore, images imageStore) Service {
	return &svc{repo: repo, images: images}
}

func (s *svc) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		s.fillImageURL(ctx, &products[i])
	}
	return products, nil
}

func (s *svc) Get(ctx context.Context, productID string) (*domain.Product, error) {
	p, err := s.repo.Get(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if p == nil {
		return nil, domain.ErrProductNotFound.With(service.Context{
			"product": map[string]any{"id": productID},
		})
	}
	s.fillImageURL(ctx, p)
	return p, nil
}

func (s *svc) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	now := time.Now().UTC()
	p := &domain.Product{
		ProductID: id.New(),
		Title:     req.Title,
		Price:     req.Price,
		Count:     req.Count,
		Status:    domain.ProductAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *svc) Update(ctx context.Context, productID string, req domain.UpdateProductRequest) (*domain.Product, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates[fieldTitle] = *req.Title
	}
	if req.Price != nil {
		updates[fieldPrice] = *req.Price
	}
	if req.Count != nil {
		updates[fieldCount] = *req.Count
	}
	if req.Status != nil {
		updates[fieldStatus] = *req.Status
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, productID, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, productID)
}

func (s *svc) Archive(ctx context.Context, productID string) (*domain.Product, error) {
	if err := s.repo.Update(ctx, productID, map[string]interface{}{fieldStatus: domain.ProductArchived}); err != nil {
		return nil, err
	}
	return s.Get(ctx, productID)
}

func (s *svc) Delete(ctx context.Context, productID string) error {
	p, err := s.Get(ctx, productID)
	if err != nil {
		return err
	}
	if p.ImageKey != "" && s.images != nil {
		_ = s.images.Delete(ctx, p.ImageKey)
	}
	return s.repo.HardDelete(ctx, productID)
}

func (s *svc) UploadImage(ctx context.Context, productID string, r io.Reader, filename, contentType string) (*domain.Product, error) {
	if s.images == nil {
		return nil, fmt.Errorf("image storage not configured")
	}
	if _, err := s.Get(ctx, productID); err != nil {
		return nil, err
	}
	key := fmt.Sprintf("products/%s/%s", productID, filename)
	if err := s.images.Upload(ctx, key, r, contentType); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, productID, map[string]interface{}{fieldImageKey: key}); err != nil {
		return nil, err
	}
	return s.Get(ctx, productID)
}

func (s *svc) fillImageURL(ctx context.Context, p *domain.Product) {
	if p.ImageKey == "" || s.images == nil {
		return
	}
	// Presign failures leave the URL empty; the catalog entry is still usable.
	if url, err := s.images.PresignedURL(ctx, p.ImageKey, presignTTL); err == nil {
		p.ImageURL = url
	}
}
