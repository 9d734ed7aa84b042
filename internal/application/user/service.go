package user

import (
	"context"
	"errors"
	"time"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/infrastructure/dynamo"
	"github.com/go-shop-api/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

// Registration conflicts are auth-layer errors, not domain errors: they map
// to 409 at the transport boundary rather than the structured 400 shape.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

type Service interface {
	// Register creates the user account plus its customer profile
	// (zero starting balance).
	Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type userStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type customerStore interface {
	Put(ctx context.Context, c *domain.Customer) error
}

type svc struct {
	users     userStore
	customers customerStore
}

func NewService(users userStore, customers customerStore) Service {
	return &svc{users: users, customers: customers}
}

func (s *svc) Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	}
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Enable:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Put(ctx, u); err != nil {
		return nil, err
	}

	c := &domain.Customer{
		CustomerID: id.New(),
		UserID:     u.UserID,
		Email:      u.Email,
		Balance:    0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.customers.Put(ctx, c); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *svc) Get(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, dynamo.ErrItemNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return u, nil
}
