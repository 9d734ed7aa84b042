package domain

import "github.com/go-shop-api/internal/pkg/service"

// Domain error variants. Each carries a stable name plus the static
// description used as the default client-facing message. Services raise them
// with caller-supplied context; the transport layer maps every one of them to
// the same 400 response shape.
var (
	ErrProductNotFound     = service.NewKind("ProductNotFound", "product not found")
	ErrNotEnoughBalance    = service.NewKind("NotEnoughBalance", "not enough balance")
	ErrProductNotAvailable = service.NewKind("ProductNotAvailable", "product not available now, please try later")
	ErrOutOfStock          = service.NewKind("OutOfStock", "product is out of stock now, please try later")
	ErrCustomerNotFound    = service.NewKind("CustomerNotFound", "customer not found")
	ErrPurchaseNotFound    = service.NewKind("PurchaseNotFound", "purchase not found")
)
