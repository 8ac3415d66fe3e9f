package mocks

import (
	"context"

	"bizindustry/cmd/internal/domain/entity"
	"bizindustry/cmd/internal/infrastructure/catalogapi"

	"github.com/stretchr/testify/mock"
)

// CatalogClient is a mock for service.CatalogClient.
type CatalogClient struct {
	mock.Mock
}

func (m *CatalogClient) Health(ctx context.Context) (*catalogapi.HealthStatus, error) {
	args := m.Called(ctx)
	if health, ok := args.Get(0).(*catalogapi.HealthStatus); ok {
		return health, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CatalogClient) ListIndustries(ctx context.Context, filters *catalogapi.ListFilters) ([]*entity.Company, error) {
	args := m.Called(ctx, filters)
	if list, ok := args.Get(0).([]*entity.Company); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CatalogClient) GetIndustry(ctx context.Context, id string) (*entity.Company, error) {
	args := m.Called(ctx, id)
	if company, ok := args.Get(0).(*entity.Company); ok {
		return company, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CatalogClient) SearchIndustries(ctx context.Context, query, sector, region string) ([]*entity.Company, error) {
	args := m.Called(ctx, query, sector, region)
	if list, ok := args.Get(0).([]*entity.Company); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CatalogClient) ListSectors(ctx context.Context) ([]*entity.Sector, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*entity.Sector); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CatalogClient) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*entity.Country); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// HandoffStore is a mock for service.HandoffStore.
type HandoffStore struct {
	mock.Mock
}

func (m *HandoffStore) Put(ctx context.Context, sessionID, key, value string) error {
	args := m.Called(ctx, sessionID, key, value)
	return args.Error(0)
}

func (m *HandoffStore) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	args := m.Called(ctx, sessionID, key)
	return args.String(0), args.Bool(1), args.Error(2)
}
