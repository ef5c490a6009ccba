// Package repository provides hand-written test doubles for the domain
// repository interfaces, built on testify/mock.
package repository

import (
	"context"
	"testing"

	"assetverse/internal/domain/entity"
	"assetverse/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock wired to the test lifecycle.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) Search(ctx context.Context, searchText string, limit int64) ([]*entity.User, error) {
	args := m.Called(ctx, searchText, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	args := m.Called(ctx, id, role)

	return args.Error(0)
}

// MockAssetRepository is a mock implementation of repository.AssetRepository.
type MockAssetRepository struct {
	mock.Mock
}

// NewMockAssetRepository creates a mock wired to the test lifecycle.
func NewMockAssetRepository(t *testing.T) *MockAssetRepository {
	m := &MockAssetRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAssetRepository) List(ctx context.Context) ([]*entity.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Asset), args.Error(1)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	args := m.Called(ctx, asset)

	return args.Error(0)
}

func (m *MockAssetRepository) UpdateQuantity(ctx context.Context, id string, quantity int64) (*repository.UpdateResult, error) {
	args := m.Called(ctx, id, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockRequestRepository is a mock implementation of repository.RequestRepository.
type MockRequestRepository struct {
	mock.Mock
}

// NewMockRequestRepository creates a mock wired to the test lifecycle.
func NewMockRequestRepository(t *testing.T) *MockRequestRepository {
	m := &MockRequestRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRequestRepository) List(ctx context.Context, status entity.RequestStatus) ([]*entity.AssetRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.AssetRequest), args.Error(1)
}

func (m *MockRequestRepository) Create(ctx context.Context, request *entity.AssetRequest) error {
	args := m.Called(ctx, request)

	return args.Error(0)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

// MockHRRepository is a mock implementation of repository.HRRepository.
type MockHRRepository struct {
	mock.Mock
}

// NewMockHRRepository creates a mock wired to the test lifecycle.
func NewMockHRRepository(t *testing.T) *MockHRRepository {
	m := &MockHRRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockHRRepository) Create(ctx context.Context, application *entity.HRApplication) error {
	args := m.Called(ctx, application)

	return args.Error(0)
}

func (m *MockHRRepository) List(ctx context.Context) ([]*entity.HRApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.HRApplication), args.Error(1)
}

func (m *MockHRRepository) FindByID(ctx context.Context, id string) (*entity.HRApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.HRApplication), args.Error(1)
}

func (m *MockHRRepository) TransitionFromPending(ctx context.Context, id string, target entity.HRStatus) (bool, error) {
	args := m.Called(ctx, id, target)

	return args.Bool(0), args.Error(1)
}

// MockTeamRepository is a mock implementation of repository.TeamRepository.
type MockTeamRepository struct {
	mock.Mock
}

// NewMockTeamRepository creates a mock wired to the test lifecycle.
func NewMockTeamRepository(t *testing.T) *MockTeamRepository {
	m := &MockTeamRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*entity.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTeamRepository) Add(ctx context.Context, member *entity.TeamMember, maxMembers int64) error {
	args := m.Called(ctx, member, maxMembers)

	return args.Error(0)
}

func (m *MockTeamRepository) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockPaymentRepository is a mock implementation of repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

// NewMockPaymentRepository creates a mock wired to the test lifecycle.
func NewMockPaymentRepository(t *testing.T) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentRepository) Upsert(ctx context.Context, record *entity.PaymentRecord) error {
	args := m.Called(ctx, record)

	return args.Error(0)
}

func (m *MockPaymentRepository) FindByEmail(ctx context.Context, email string) (*entity.PaymentRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PaymentRecord), args.Error(1)
}
