package user

import (
	"context"
	"errors"
	"testing"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/infrastructure/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Put(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCustomerStore struct{ mock.Mock }

func (m *mockCustomerStore) Put(ctx context.Context, c *domain.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func validRequest() domain.CreateUserRequest {
	return domain.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}
}

func TestRegister_CreatesUserAndCustomer(t *testing.T) {
	us, cs := &mockUserStore{}, &mockCustomerStore{}

	us.On("GetByUsername", mock.Anything, "alice").Return(nil, dynamo.ErrItemNotFound)
	us.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, dynamo.ErrItemNotFound)
	us.On("Put", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	var gotCustomer *domain.Customer
	cs.On("Put", mock.Anything, mock.AnythingOfType("*domain.Customer")).Run(func(args mock.Arguments) {
		gotCustomer = args.Get(1).(*domain.Customer)
	}).Return(nil)

	u, err := NewService(us, cs).Register(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.True(t, u.Enable)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))

	require.NotNil(t, gotCustomer)
	assert.Equal(t, u.UserID, gotCustomer.UserID)
	assert.Equal(t, u.Email, gotCustomer.Email)
	assert.Equal(t, 0, gotCustomer.Balance)
}

func TestRegister_UsernameTaken(t *testing.T) {
	us, cs := &mockUserStore{}, &mockCustomerStore{}

	us.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{UserID: "other"}, nil)

	_, err := NewService(us, cs).Register(context.Background(), validRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUsernameTaken))
	us.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestRegister_EmailTaken(t *testing.T) {
	us, cs := &mockUserStore{}, &mockCustomerStore{}

	us.On("GetByUsername", mock.Anything, "alice").Return(nil, dynamo.ErrItemNotFound)
	us.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{UserID: "other"}, nil)

	_, err := NewService(us, cs).Register(context.Background(), validRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmailTaken))
}

func TestGet_NotFound(t *testing.T) {
	us, cs := &mockUserStore{}, &mockCustomerStore{}

	us.On("Get", mock.Anything, "ghost").Return(nil, dynamo.ErrItemNotFound)

	_, err := NewService(us, cs).Get(context.Background(), "ghost")

	require.Error(t, err)
}

func TestGet_Found(t *testing.T) {
	us, cs := &mockUserStore{}, &mockCustomerStore{}

	us.On("Get", mock.Anything, "user-1").Return(&domain.User{UserID: "user-1", Username: "alice"}, nil)

	u, err := NewService(us, cs).Get(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}
