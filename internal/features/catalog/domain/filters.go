package domain

import (
	"sort"
	"strings"
)

// SortOption enumerates the supported product orderings.
type SortOption string

const (
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
)

// Filter describes listing criteria. Zero values mean "no filter".
type Filter struct {
	// Search matches against name, descriptions and tags, case-insensitively.
	Search string
	// CategoryIDs restricts results to the given categories.
	CategoryIDs []string
	// HasDiscount, when true, keeps only discounted products.
	HasDiscount bool
}

// FilterProducts returns the products matching the filter, preserving input order.
func FilterProducts(products []Product, f Filter) []Product {
	filtered := make([]Product, 0, len(products))

	query := strings.ToLower(strings.TrimSpace(f.Search))

	for _, p := range products {
		if query != "" && !matchesSearch(&p, query) {
			continue
		}
		if len(f.CategoryIDs) > 0 && !containsString(f.CategoryIDs, p.CategoryID) {
			continue
		}
		if f.HasDiscount && !p.HasDiscount() {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

func matchesSearch(p *Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.ShortDescription), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// SortProducts returns a sorted copy of the products. Unknown options leave
// the input order untouched.
func SortProducts(products []Product, by SortOption) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch by {
	case SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	case SortNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name > sorted[j].Name })
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectivePrice() < sorted[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectivePrice() > sorted[j].EffectivePrice()
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })
	}

	return sorted
}

// Paginate slices a product list into the requested page.
// Pages are 1-based; out-of-range pages yield an empty slice.
func Paginate(products []Product, page, perPage int) (paged []Product, totalPages int) {
	if perPage <= 0 || len(products) == 0 {
		return []Product{}, 0
	}
	if page < 1 {
		page = 1
	}

	totalPages = (len(products) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= len(products) {
		return []Product{}, totalPages
	}

	end := start + perPage
	if end > len(products) {
		end = len(products)
	}

	return products[start:end], totalPages
}
