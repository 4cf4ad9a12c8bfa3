package ports

import (
	"context"

	"snack-store/internal/features/catalog/domain"
)

// CatalogService defines the primary port for browsing the catalog.
type CatalogService interface {
	ListProducts(ctx context.Context, filter domain.Filter, sortBy domain.SortOption, page, perPage int) (*domain.ProductPage, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// ProductRepository defines the secondary port for catalog storage.
// The cart and orders features consume product snapshots through it and
// never write back.
type ProductRepository interface {
	All(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}
