package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/infrastructure/smtp"
	"github.com/go-shop-api/internal/infrastructure/sns"
	"github.com/go-shop-api/internal/pkg/id"
	"github.com/go-shop-api/internal/pkg/service"
	"github.com/rs/zerolog"
)

// serviceName labels this service in structured error records.
const serviceName = "PurchaseService"

type Service interface {
	// Buy checks the product against the customer's balance and the current
	// stock, then commits the purchase atomically. All business rejections are
	// domain errors; infrastructure failures are returned as-is.
	Buy(ctx context.Context, customer *domain.Customer, req domain.BuyProductRequest) (*domain.Purchase, error)
	Get(ctx context.Context, customer *domain.Customer, purchaseID string) (*domain.Purchase, error)
	List(ctx context.Context, customer *domain.Customer) ([]domain.Purchase, error)
}

type productStore interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
}

type purchaseStore interface {
	Commit(ctx context.Context, p *domain.Purchase) error
	Get(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Purchase, error)
}

type notificationStore interface {
	Put(ctx context.Context, n *domain.Notification) error
}

type svc struct {
	products      productStore
	purchases     purchaseStore
	notifications notificationStore
	events        sns.EventPublisher // may be nil
	mailer        smtp.Mailer        // may be nil
	logger        zerolog.Logger
}

func NewService(products productStore, purchases purchaseStore, notifications notificationStore, events sns.EventPublisher, mailer smtp.Mailer, logger zerolog.Logger) Service {
	return &svc{
		products:      products,
		purchases:     purchases,
		notifications: notifications,
		events:        events,
		mailer:        mailer,
		logger:        logger,
	}
}

func (s *svc) Buy(ctx context.Context, customer *domain.Customer, req domain.BuyProductRequest) (*domain.Purchase, error) {
	product, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound.With(service.Context{
			"product": map[string]any{"id": req.ProductID, "quantity": req.Quantity},
		})
	}
	if req.Quantity > customer.CanBuyMaxOf(product) {
		return nil, domain.ErrNotEnoughBalance.With(service.Context{
			"product":  map[string]any{"id": product.ProductID, "count": product.Count, "price": product.Price},
			"customer": map[string]any{"id": customer.CustomerID, "balance": customer.Balance},
		})
	}
	if !product.Available() {
		return nil, domain.ErrProductNotAvailable.With(service.Context{
			"product": map[string]any{"id": product.ProductID, "status": product.Status, "count": product.Count},
		})
	}
	if req.Quantity > product.Count {
		return nil, domain.ErrOutOfStock.With(service.Context{
			"product": map[string]any{"id": product.ProductID, "count": product.Count, "quantity": req.Quantity},
		})
	}

	p := &domain.Purchase{
		PurchaseID: id.New(),
		CustomerID: customer.CustomerID,
		ProductID:  product.ProductID,
		Quantity:   req.Quantity,
		UnitPrice:  product.Price,
		Total:      req.Quantity * product.Price,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.purchases.Commit(ctx, p); err != nil {
		return nil, err
	}

	s.afterCommit(ctx, customer, product, p)
	return p, nil
}

// afterCommit runs the best-effort side effects of a completed purchase.
// None of them can fail the purchase; problems are logged and dropped.
func (s *svc) afterCommit(ctx context.Context, customer *domain.Customer, product *domain.Product, p *domain.Purchase) {
	if err := s.notifications.Put(ctx, &domain.Notification{
		NotificationID: id.New(),
		UserID:         customer.UserID,
		PurchaseID:     p.PurchaseID,
		Message:        fmt.Sprintf("You bought %d x %s for %d", p.Quantity, product.Title, p.Total),
		CreatedAt:      p.CreatedAt,
	}); err != nil {
		s.logger.Warn().Err(err).Str("purchase_id", p.PurchaseID).Msg("could not write purchase notification")
	}

	if s.events != nil {
		if err := s.events.PublishPurchase(ctx, p); err != nil {
			s.logger.Warn().Err(err).Str("purchase_id", p.PurchaseID).Msg("could not publish purchase event")
		}
	}

	if s.mailer != nil && customer.Email != "" {
		body := fmt.Sprintf("Thanks for your order!\n\n%d x %s\nTotal: %d\nOrder id: %s\n",
			p.Quantity, product.Title, p.Total, p.PurchaseID)
		if err := s.mailer.SendEmail(customer.Email, "Your purchase receipt", body); err != nil {
			s.logger.Warn().Err(err).Str("purchase_id", p.PurchaseID).Msg("could not send receipt email")
		}
	}
}

func (s *svc) Get(ctx context.Context, customer *domain.Customer, purchaseID string) (*domain.Purchase, error) {
	p, err := s.purchases.Get(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("load purchase: %w", err)
	}
	// A purchase belonging to another customer is reported as missing rather
	// than forbidden, so ids cannot be probed.
	if p == nil || p.CustomerID != customer.CustomerID {
		return nil, domain.ErrPurchaseNotFound.With(service.Context{
			"purchase": map[string]any{"id": purchaseID},
		})
	}
	return p, nil
}

func (s *svc) List(ctx context.Context, customer *domain.Customer) ([]domain.Purchase, error) {
	return s.purchases.ListByCustomer(ctx, customer.CustomerID)
}
