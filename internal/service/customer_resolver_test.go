package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffleon2/mercadopago-payment-service/internal/gateway"
	"github.com/jeffleon2/mercadopago-payment-service/internal/models"
	"github.com/jeffleon2/mercadopago-payment-service/internal/service"
	"github.com/jeffleon2/mercadopago-payment-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResolve_ExistingCustomer(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	resolver := service.NewCustomerResolver(mockGateway)

	ctx := context.Background()

	mockGateway.EXPECT().
		SearchCustomers(ctx, "known@example.com").
		Return([]models.Customer{{ID: "cust_999", Email: "known@example.com"}}, nil).
		Once()

	id, err := resolver.Resolve(ctx, "known@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "cust_999", id)
	mockGateway.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
}

func TestResolve_FirstMatchWins(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	resolver := service.NewCustomerResolver(mockGateway)

	ctx := context.Background()

	mockGateway.EXPECT().
		SearchCustomers(ctx, "known@example.com").
		Return([]models.Customer{
			{ID: "cust_1", Email: "known@example.com"},
			{ID: "cust_2", Email: "known@example.com"},
		}, nil).
		Once()

	id, err := resolver.Resolve(ctx, "known@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "cust_1", id)
}

func TestResolve_CreatesWhenAbsent(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	resolver := service.NewCustomerResolver(mockGateway)

	ctx := context.Background()

	mockGateway.EXPECT().
		SearchCustomers(ctx, "new@example.com").
		Return([]models.Customer{}, nil).
		Once()

	mockGateway.EXPECT().
		CreateCustomer(ctx, "new@example.com").
		Return(&models.Customer{ID: "cust_123", Email: "new@example.com"}, nil).
		Once()

	id, err := resolver.Resolve(ctx, "new@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "cust_123", id)
	mockGateway.AssertNumberOfCalls(t, "CreateCustomer", 1)
}

func TestResolve_SearchError(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	resolver := service.NewCustomerResolver(mockGateway)

	ctx := context.Background()
	upstreamErr := &gateway.UpstreamError{StatusCode: 500, Body: "internal error"}

	mockGateway.EXPECT().
		SearchCustomers(ctx, "someone@example.com").
		Return(nil, upstreamErr).
		Once()

	id, err := resolver.Resolve(ctx, "someone@example.com")

	assert.Error(t, err)
	assert.Empty(t, id)

	var resolutionErr *service.ResolutionError
	assert.True(t, errors.As(err, &resolutionErr))
	assert.ErrorIs(t, err, upstreamErr)
	mockGateway.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
}

func TestResolve_CreateConflictSurfacesAsError(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	resolver := service.NewCustomerResolver(mockGateway)

	ctx := context.Background()
	conflictErr := &gateway.UpstreamError{StatusCode: 409, Body: `{"message":"customer already exists"}`}

	mockGateway.EXPECT().
		SearchCustomers(ctx, "raced@example.com").
		Return([]models.Customer{}, nil).
		Once()

	mockGateway.EXPECT().
		CreateCustomer(ctx, "raced@example.com").
		Return(nil, conflictErr).
		Once()

	id, err := resolver.Resolve(ctx, "raced@example.com")

	assert.Error(t, err)
	assert.Empty(t, id)

	var resolutionErr *service.ResolutionError
	assert.True(t, errors.As(err, &resolutionErr))
	assert.ErrorIs(t, err, conflictErr)
}

func TestFind_AbsentIsNotAnError(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	resolver := service.NewCustomerResolver(mockGateway)

	ctx := context.Background()

	mockGateway.EXPECT().
		SearchCustomers(ctx, "ghost@example.com").
		Return([]models.Customer{}, nil).
		Once()

	id, found, err := resolver.Find(ctx, "ghost@example.com")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, id)
	mockGateway.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
}

func TestFind_TransportError(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	resolver := service.NewCustomerResolver(mockGateway)

	ctx := context.Background()
	transportErr := &gateway.TransportError{Op: "GET /v1/customers/search", Err: errors.New("connection refused")}

	mockGateway.EXPECT().
		SearchCustomers(ctx, "someone@example.com").
		Return(nil, transportErr).
		Once()

	_, found, err := resolver.Find(ctx, "someone@example.com")

	assert.Error(t, err)
	assert.False(t, found)
	assert.ErrorIs(t, err, transportErr)
}
