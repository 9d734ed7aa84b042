package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-shop-api/internal/application/customer"
	"github.com/go-shop-api/internal/application/notification"
	"github.com/go-shop-api/internal/application/product"
	"github.com/go-shop-api/internal/application/purchase"
	"github.com/go-shop-api/internal/application/session"
	"github.com/go-shop-api/internal/application/user"
	"github.com/go-shop-api/internal/config"
	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/transport/http/handler"
	appmiddleware "github.com/go-shop-api/internal/transport/http/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router. Services are wrapped
// in their logging decorators here, at the composition point, so every domain
// error they raise is recorded once before the handlers map it to a response.
func NewRouter(cfg *config.Config, logger zerolog.Logger, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}
	customerMw := appmiddleware.CustomerRequired(deps.CustomerRepo)

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints
	// and the buy endpoint.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	productSvc := product.NewService(deps.ProductRepo, nil)
	if deps.ImageStore != nil {
		productSvc = product.NewService(deps.ProductRepo, deps.ImageStore)
	}
	productSvc = product.NewLoggingService(productSvc, logger)

	purchaseSvc := purchase.NewLoggingService(
		purchase.NewService(deps.ProductRepo, deps.PurchaseRepo, deps.NotificationRepo, deps.Events, deps.Mailer, logger),
		logger,
	)
	customerSvc := customer.NewLoggingService(customer.NewService(deps.CustomerRepo), logger)
	userSvc := user.NewService(deps.UserRepo, deps.CustomerRepo)
	sessionSvc := session.NewService(deps.SessionRepo, deps.UserRepo, deps.JWTProvider, cfg.RefreshTokenExpiryDays)
	notifSvc := notification.NewService(deps.NotificationRepo)

	healthH := handler.NewHealthHandler()
	productH := handler.NewProductHandler(productSvc)
	purchaseH := handler.NewPurchaseHandler(purchaseSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	userH := handler.NewUserHandler(userSvc)
	sessionH := handler.NewSessionHandler(sessionSvc)
	notifH := handler.NewNotificationHandler(notifSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/sessions/login", sessionH.Login)
		r.Post("/sessions/refresh", sessionH.Refresh)
		r.With(sensitiveRL.Limit).Post("/users", userH.Register)
		r.Get("/products", productH.List)
		r.Get("/products/{id}", productH.Get)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/sessions", sessionH.GetCurrent)
			r.Post("/sessions/logout", sessionH.Logout)
			r.Get("/users/{id}", userH.Get)
			r.Get("/customers/me", customerH.Me)
			r.Get("/notifications", notifH.ListUnread)
			r.Put("/notifications/{id}", notifH.MarkAsRead)

			// Buying requires a customer profile
			r.Group(func(r chi.Router) {
				r.Use(customerMw)

				r.With(sensitiveRL.Limit).Post("/purchases", purchaseH.Buy)
				r.Get("/purchases", purchaseH.List)
				r.Get("/purchases/{id}", purchaseH.Get)
			})

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Post("/products", productH.Create)
				r.Put("/products/{id}", productH.Update)
				r.Post("/products/{id}/archive", productH.Archive)
				r.Delete("/products/{id}", productH.Delete)
				r.Post("/products/{id}/image", productH.UploadImage)
				r.Post("/customers/{id}/credit", customerH.Credit)
			})
		})
	})

	return r
}
