package adapters

import (
	"context"
	"strings"

	"snack-store/internal/features/catalog/domain"
)

// MemoryProductRepository implements ports.ProductRepository over an in-memory
// product list. The catalog is an external collaborator to the rest of the
// system; this adapter stands in for it with seed data until a real backend
// supplies products.
type MemoryProductRepository struct {
	products   []domain.Product
	categories []domain.Category
}

// NewMemoryProductRepository creates a repository holding the given products
// and categories.
func NewMemoryProductRepository(products []domain.Product, categories []domain.Category) *MemoryProductRepository {
	return &MemoryProductRepository{
		products:   products,
		categories: categories,
	}
}

// NewSeededProductRepository creates a repository preloaded with the demo
// snack catalog.
func NewSeededProductRepository() *MemoryProductRepository {
	return NewMemoryProductRepository(SeedProducts(), SeedCategories())
}

// All returns every product in the catalog.
func (r *MemoryProductRepository) All(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindByID returns the product with the given id.
func (r *MemoryProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// FindBySlug returns the product with the given slug.
func (r *MemoryProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for i := range r.products {
		if r.products[i].Slug == slug {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// Categories returns every category.
func (r *MemoryProductRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}
