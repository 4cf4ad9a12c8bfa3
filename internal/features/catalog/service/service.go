package service

import (
	"context"
	"fmt"

	"snack-store/internal/features/catalog/domain"
	"snack-store/internal/features/catalog/ports"
)

// CatalogServiceImpl implements ports.CatalogService.
type CatalogServiceImpl struct {
	repo            ports.ProductRepository
	defaultPageSize int
}

// NewCatalogService creates a new CatalogServiceImpl.
func NewCatalogService(repo ports.ProductRepository, defaultPageSize int) *CatalogServiceImpl {
	if defaultPageSize <= 0 {
		defaultPageSize = 12
	}
	return &CatalogServiceImpl{
		repo:            repo,
		defaultPageSize: defaultPageSize,
	}
}

// ListProducts returns one page of products matching the filter, sorted.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context, filter domain.Filter, sortBy domain.SortOption, page, perPage int) (*domain.ProductPage, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}

	filtered := domain.FilterProducts(products, filter)
	sorted := domain.SortProducts(filtered, sortBy)

	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = s.defaultPageSize
	}

	paged, totalPages := domain.Paginate(sorted, page, perPage)

	return &domain.ProductPage{
		Products:   paged,
		Page:       page,
		PerPage:    perPage,
		TotalItems: len(sorted),
		TotalPages: totalPages,
	}, nil
}

// GetProductBySlug returns the product for a product detail page.
func (s *CatalogServiceImpl) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetProductByID returns a product snapshot by id. The cart and orders
// features use this before every mutation to re-check stock and availability.
func (s *CatalogServiceImpl) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// ListCategories returns the category tree.
func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}
