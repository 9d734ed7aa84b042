package purchase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-shop-api/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingService_BuyLogsDomainErrorOnce(t *testing.T) {
	ps, bs, ns := &mockProductStore{}, &mockPurchaseStore{}, &mockNotificationStore{}
	ps.On("Get", mock.Anything, "ghost").Return(nil, nil)

	var buf bytes.Buffer
	svc := NewLoggingService(newSvc(ps, bs, ns), zerolog.New(&buf))

	_, err := svc.Buy(context.Background(), richCustomer(), domain.BuyProductRequest{ProductID: "ghost", Quantity: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProductNotFound))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "PurchaseService", record["error_in"])
	assert.Equal(t, "ProductNotFound", record["error_name"])
	assert.Equal(t, "product not found", record["error_message"])
	assert.Contains(t, record["error_context"], "product")
}

func TestLoggingService_InfraErrorPassesThroughSilently(t *testing.T) {
	ps, bs, ns := &mockProductStore{}, &mockPurchaseStore{}, &mockNotificationStore{}
	boom := errors.New("dynamo down")
	ps.On("Get", mock.Anything, "prod-1").Return(nil, boom)

	var buf bytes.Buffer
	svc := NewLoggingService(newSvc(ps, bs, ns), zerolog.New(&buf))

	_, err := svc.Buy(context.Background(), richCustomer(), domain.BuyProductRequest{ProductID: "prod-1", Quantity: 1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Empty(t, buf.String())
}

func TestLoggingService_SuccessLogsNothing(t *testing.T) {
	ps, bs, ns := &mockProductStore{}, &mockPurchaseStore{}, &mockNotificationStore{}
	bs.On("ListByCustomer", mock.Anything, "cust-1").Return([]domain.Purchase{}, nil)

	var buf bytes.Buffer
	svc := NewLoggingService(newSvc(ps, bs, ns), zerolog.New(&buf))

	_, err := svc.List(context.Background(), richCustomer())

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
