// Package service provides hand-written test doubles for the domain
// service interfaces, built on testify/mock.
package service

import (
	"context"
	"testing"

	"assetverse/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTokenVerifier is a mock implementation of service.TokenVerifier.
type MockTokenVerifier struct {
	mock.Mock
}

// NewMockTokenVerifier creates a mock wired to the test lifecycle.
func NewMockTokenVerifier(t *testing.T) *MockTokenVerifier {
	m := &MockTokenVerifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenVerifier) Verify(ctx context.Context, idToken string) (*entity.Principal, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Principal), args.Error(1)
}

// MockCheckoutService is a mock implementation of service.CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

// NewMockCheckoutService creates a mock wired to the test lifecycle.
func NewMockCheckoutService(t *testing.T) *MockCheckoutService {
	m := &MockCheckoutService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCheckoutService) CreateSession(ctx context.Context, customerEmail, plan string, price int64) (*entity.CheckoutSession, error) {
	args := m.Called(ctx, customerEmail, plan, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CheckoutSession), args.Error(1)
}

func (m *MockCheckoutService) GetSession(ctx context.Context, sessionID string) (*entity.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CheckoutSession), args.Error(1)
}

// MockQRCodeService is a mock implementation of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a mock wired to the test lifecycle.
func NewMockQRCodeService(t *testing.T) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateURL(url string) ([]byte, error) {
	args := m.Called(url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
