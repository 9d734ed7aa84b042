package middleware

import (
	"context"
	"net/http"

	"github.com/go-shop-api/internal/domain"
)

const customerKey contextKey = "customer"

// CustomerStore is the lookup the customer gate needs.
type CustomerStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Customer, error)
}

// CustomerRequired returns middleware that resolves the authenticated user's
// customer profile and injects it into the request context. Users without a
// profile are rejected — must run after Auth.
func CustomerRequired(store CustomerStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			c, err := store.GetByUserID(r.Context(), claims.UserID)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if c == nil {
				writeJSONError(w, http.StatusForbidden, "customer profile required")
				return
			}
			ctx := context.WithValue(r.Context(), customerKey, c)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CustomerFromContext extracts the customer profile injected by CustomerRequired.
func CustomerFromContext(ctx context.Context) (*domain.Customer, bool) {
	c, ok := ctx.Value(customerKey).(*domain.Customer)
	return c, ok
}

// WithCustomer injects a customer into a context. Intended for handler tests.
func WithCustomer(ctx context.Context, c *domain.Customer) context.Context {
	return context.WithValue(ctx, customerKey, c)
}
