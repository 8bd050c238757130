package property

import (
	"context"

	"github.com/propertyhub/backend/internal/domain/owner"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository is a mock implementation of property.PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindAll(ctx context.Context) ([]property.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id int) (*property.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindByOwnerID(ctx context.Context, ownerID int) ([]property.Property, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Property), args.Error(1)
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *property.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Update(ctx context.Context, p *property.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPropertyRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPropertyTypeRepository is a mock implementation of property.PropertyTypeRepository
type MockPropertyTypeRepository struct {
	mock.Mock
}

func (m *MockPropertyTypeRepository) FindAll(ctx context.Context) ([]property.PropertyType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.PropertyType), args.Error(1)
}

func (m *MockPropertyTypeRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockOwnerRepository is a mock implementation of owner.OwnerRepository
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) FindAll(ctx context.Context) ([]owner.Owner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]owner.Owner), args.Error(1)
}

func (m *MockOwnerRepository) FindByID(ctx context.Context, id int) (*owner.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*owner.Owner), args.Error(1)
}

func (m *MockOwnerRepository) Create(ctx context.Context, o *owner.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOwnerRepository) Update(ctx context.Context, o *owner.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOwnerRepository) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOwnerRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
