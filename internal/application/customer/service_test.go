package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCustomerStore struct{ mock.Mock }

func (m *mockCustomerStore) Get(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if c, _ := args.Get(0).(*domain.Customer); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCustomerStore) GetByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	args := m.Called(ctx, userID)
	if c, _ := args.Get(0).(*domain.Customer); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCustomerStore) AddBalance(ctx context.Context, customerID string, amount int) error {
	return m.Called(ctx, customerID, amount).Error(0)
}

func TestGetByUser_Found(t *testing.T) {
	repo := &mockCustomerStore{}
	repo.On("GetByUserID", mock.Anything, "user-1").Return(&domain.Customer{CustomerID: "cust-1", UserID: "user-1"}, nil)

	c, err := NewService(repo).GetByUser(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "cust-1", c.CustomerID)
}

func TestGetByUser_Missing(t *testing.T) {
	repo := &mockCustomerStore{}
	repo.On("GetByUserID", mock.Anything, "user-x").Return(nil, nil)

	_, err := NewService(repo).GetByUser(context.Background(), "user-x")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCustomerNotFound))

	var svcErr *service.Error
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, service.Context{"user": map[string]any{"id": "user-x"}}, svcErr.Context())
}

func TestCredit_AddsBalance(t *testing.T) {
	repo := &mockCustomerStore{}
	repo.On("Get", mock.Anything, "cust-1").Return(&domain.Customer{CustomerID: "cust-1", Balance: 100}, nil)
	repo.On("AddBalance", mock.Anything, "cust-1", 50).Return(nil)

	c, err := NewService(repo).Credit(context.Background(), "cust-1", domain.CreditCustomerRequest{Amount: 50})

	require.NoError(t, err)
	assert.Equal(t, 150, c.Balance)
	repo.AssertCalled(t, "AddBalance", mock.Anything, "cust-1", 50)
}

func TestCredit_MissingCustomer(t *testing.T) {
	repo := &mockCustomerStore{}
	repo.On("Get", mock.Anything, "ghost").Return(nil, nil)

	_, err := NewService(repo).Credit(context.Background(), "ghost", domain.CreditCustomerRequest{Amount: 50})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCustomerNotFound))
	repo.AssertNotCalled(t, "AddBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestCredit_StoreErrorPassesThrough(t *testing.T) {
	repo := &mockCustomerStore{}
	boom := errors.New("dynamo down")
	repo.On("Get", mock.Anything, "cust-1").Return(nil, boom)

	_, err := NewService(repo).Credit(context.Background(), "cust-1", domain.CreditCustomerRequest{Amount: 50})

	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}
