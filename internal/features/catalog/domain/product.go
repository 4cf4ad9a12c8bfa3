package domain

import "time"

// ProductImage represents one image attached to a product.
type ProductImage struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"isPrimary"`
	Order     int    `json:"order"`
}

// Category represents a product category. Categories may nest one level via ParentID.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID string `json:"parentId,omitempty"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
}

// Product represents a catalog product snapshot.
// The cart and orders features only ever read these values; the catalog owns them.
type Product struct {
	// ID is the unique identifier for the product.
	ID string `json:"id"`
	// Name is the display name of the product.
	Name string `json:"name"`
	// Slug is the URL-friendly identifier used on product pages.
	Slug string `json:"slug"`
	// SKU is the stock keeping unit code.
	SKU string `json:"sku"`
	// Description is the full product description.
	Description string `json:"description"`
	// ShortDescription is a one-line summary shown on listing cards.
	ShortDescription string `json:"shortDescription,omitempty"`
	// Price is the list price of the product.
	Price float64 `json:"price"`
	// DiscountPrice is the discounted price; zero means no discount.
	DiscountPrice float64 `json:"discountPrice,omitempty"`
	// DiscountPercentage is the advertised discount percentage.
	DiscountPercentage int `json:"discountPercentage,omitempty"`
	// Stock is the number of purchasable units at this point in time.
	Stock int `json:"stock"`
	// Images holds the product gallery.
	Images []ProductImage `json:"images,omitempty"`
	// CategoryID references the owning category.
	CategoryID string `json:"categoryId"`
	// IsActive marks whether the product is purchasable.
	IsActive bool `json:"isActive"`
	// IsFeatured marks products highlighted on the home page.
	IsFeatured bool `json:"isFeatured"`
	// Tags are free-form labels used by search.
	Tags []string `json:"tags,omitempty"`
	// CreatedAt is when the product was added to the catalog.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the product was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasDiscount reports whether the product carries a discounted price.
func (p *Product) HasDiscount() bool {
	return p.DiscountPrice > 0
}

// EffectivePrice returns the price a buyer actually pays:
// the discount price when present, otherwise the list price.
func (p *Product) EffectivePrice() float64 {
	if p.HasDiscount() {
		return p.DiscountPrice
	}
	return p.Price
}
