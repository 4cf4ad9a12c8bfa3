package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"snack-store/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ports.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) All(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func catalogFixture() []domain.Product {
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Product{
		{ID: "p1", Name: "Doritos", Price: 1250, DiscountPrice: 999, CategoryID: "c1", CreatedAt: base},
		{ID: "p2", Name: "Lays", Price: 1100, CategoryID: "c1", CreatedAt: base.Add(time.Hour)},
		{ID: "p3", Name: "Coca Cola", Price: 800, CategoryID: "c2", CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("FilterSortAndPaginate", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewCatalogService(mockRepo, 12)

		mockRepo.On("All", ctx).Return(catalogFixture(), nil).Once()

		page, err := svc.ListProducts(ctx, domain.Filter{CategoryIDs: []string{"c1"}}, domain.SortPriceAsc, 1, 1)
		require.NoError(t, err)

		assert.Equal(t, 2, page.TotalItems)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Products, 1)
		// 999 effective < 1100
		assert.Equal(t, "p1", page.Products[0].ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("DefaultsAppliedForBadPaging", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewCatalogService(mockRepo, 2)

		mockRepo.On("All", ctx).Return(catalogFixture(), nil).Once()

		page, err := svc.ListProducts(ctx, domain.Filter{}, "", 0, 0)
		require.NoError(t, err)

		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 2, page.PerPage)
		assert.Len(t, page.Products, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewCatalogService(mockRepo, 12)

		mockRepo.On("All", ctx).Return(nil, errors.New("boom")).Once()

		page, err := svc.ListProducts(ctx, domain.Filter{}, "", 1, 10)
		assert.Error(t, err)
		assert.Nil(t, page)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_GetProductBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewCatalogService(mockRepo, 12)

		expected := &domain.Product{ID: "p1", Slug: "doritos"}
		mockRepo.On("FindBySlug", ctx, "doritos").Return(expected, nil).Once()

		p, err := svc.GetProductBySlug(ctx, "doritos")
		require.NoError(t, err)
		assert.Equal(t, expected, p)
		mockRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewCatalogService(mockRepo, 12)

		mockRepo.On("FindBySlug", ctx, "nope").Return(nil, domain.ErrProductNotFound).Once()

		_, err := svc.GetProductBySlug(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_ListCategories(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	svc := NewCatalogService(mockRepo, 12)

	cats := []domain.Category{{ID: "c1", Name: "Snacks"}}
	mockRepo.On("Categories", ctx).Return(cats, nil).Once()

	got, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, cats, got)
	mockRepo.AssertExpectations(t)
}
