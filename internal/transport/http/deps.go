package http

import (
	"github.com/go-shop-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-shop-api/internal/infrastructure/jwt"
	s3infra "github.com/go-shop-api/internal/infrastructure/s3"
	"github.com/go-shop-api/internal/infrastructure/smtp"
	"github.com/go-shop-api/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router. Optional
// collaborators (image store, event publisher, mailer, JWT provider) may be
// nil; the router degrades the affected features.
type Deps struct {
	ProductRepo      *dynamo.ProductRepo
	CustomerRepo     *dynamo.CustomerRepo
	PurchaseRepo     *dynamo.PurchaseRepo
	UserRepo         *dynamo.UserRepo
	SessionRepo      *dynamo.SessionRepo
	NotificationRepo *dynamo.NotificationRepo
	ImageStore       *s3infra.Store
	Events           sns.EventPublisher
	Mailer           smtp.Mailer
	JWTProvider      *jwtinfra.Provider
}
