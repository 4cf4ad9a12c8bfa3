package adapters

import (
	"time"

	"snack-store/internal/features/catalog/domain"
)

var seedTime = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

// SeedCategories returns the demo category tree.
func SeedCategories() []domain.Category {
	return []domain.Category{
		{ID: "cat-1", Name: "Snacks Salados", Slug: "snacks-salados", Order: 1, IsActive: true},
		{ID: "cat-1-1", Name: "Papas Fritas", Slug: "papas-fritas", ParentID: "cat-1", Order: 1, IsActive: true},
		{ID: "cat-1-2", Name: "Nachos", Slug: "nachos", ParentID: "cat-1", Order: 2, IsActive: true},
		{ID: "cat-2", Name: "Golosinas", Slug: "golosinas", Order: 2, IsActive: true},
		{ID: "cat-2-1", Name: "Chocolates", Slug: "chocolates", ParentID: "cat-2", Order: 1, IsActive: true},
		{ID: "cat-3", Name: "Bebidas", Slug: "bebidas", Order: 3, IsActive: true},
	}
}

// SeedProducts returns the demo snack catalog.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:                 "prod-1",
			Name:               "Doritos Nacho Cheese 150g",
			Slug:               "doritos-nacho-cheese-150g",
			SKU:                "DOR-NAC-150",
			Description:        "Los clasicos Doritos sabor queso nacho. Triangulos de maiz horneados con un sabor intenso.",
			ShortDescription:   "Sabor intenso a queso nacho",
			Price:              1250,
			DiscountPrice:      999,
			DiscountPercentage: 20,
			Stock:              45,
			CategoryID:         "cat-1-2",
			IsActive:           true,
			IsFeatured:         true,
			Tags:               []string{"oferta", "popular"},
			Images: []domain.ProductImage{
				{ID: "img-1-1", URL: "https://placehold.co/600x600?text=Doritos", Alt: "Doritos Nacho Cheese", IsPrimary: true, Order: 1},
			},
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:               "prod-2",
			Name:             "Lays Clasicas 140g",
			Slug:             "lays-clasicas-140g",
			SKU:              "LAY-CLA-140",
			Description:      "Papas fritas clasicas, finas y crocantes, con un toque de sal.",
			ShortDescription: "Las papas de siempre",
			Price:            1100,
			Stock:            60,
			CategoryID:       "cat-1-1",
			IsActive:         true,
			IsFeatured:       true,
			Tags:             []string{"clasico", "popular"},
			Images: []domain.ProductImage{
				{ID: "img-2-1", URL: "https://placehold.co/600x600?text=Lays", Alt: "Lays Clasicas", IsPrimary: true, Order: 1},
			},
			CreatedAt: seedTime.Add(24 * time.Hour),
			UpdatedAt: seedTime.Add(24 * time.Hour),
		},
		{
			ID:                 "prod-3",
			Name:               "Chocolate Milka Leche 100g",
			Slug:               "chocolate-milka-leche-100g",
			SKU:                "MIL-LEC-100",
			Description:        "Tableta de chocolate con leche de los Alpes, suave y cremoso.",
			ShortDescription:   "Chocolate alpino con leche",
			Price:              1800,
			DiscountPrice:      1440,
			DiscountPercentage: 20,
			Stock:              30,
			CategoryID:         "cat-2-1",
			IsActive:           true,
			IsFeatured:         false,
			Tags:               []string{"oferta", "dulce"},
			Images: []domain.ProductImage{
				{ID: "img-3-1", URL: "https://placehold.co/600x600?text=Milka", Alt: "Chocolate Milka", IsPrimary: true, Order: 1},
			},
			CreatedAt: seedTime.Add(48 * time.Hour),
			UpdatedAt: seedTime.Add(48 * time.Hour),
		},
		{
			ID:               "prod-4",
			Name:             "Coca Cola 500ml",
			Slug:             "coca-cola-500ml",
			SKU:              "COC-ORI-500",
			Description:      "Gaseosa Coca Cola sabor original, botella de 500ml.",
			ShortDescription: "El refresco clasico",
			Price:            800,
			Stock:            120,
			CategoryID:       "cat-3",
			IsActive:         true,
			IsFeatured:       false,
			Tags:             []string{"bebida", "clasico"},
			Images: []domain.ProductImage{
				{ID: "img-4-1", URL: "https://placehold.co/600x600?text=Coca+Cola", Alt: "Coca Cola 500ml", IsPrimary: true, Order: 1},
			},
			CreatedAt: seedTime.Add(72 * time.Hour),
			UpdatedAt: seedTime.Add(72 * time.Hour),
		},
		{
			ID:               "prod-5",
			Name:             "Pringles Original 124g",
			Slug:             "pringles-original-124g",
			SKU:              "PRI-ORI-124",
			Description:      "Papas Pringles sabor original en su tubo caracteristico.",
			ShortDescription: "Una vez que haces pop",
			Price:            2200,
			Stock:            0,
			CategoryID:       "cat-1-1",
			IsActive:         true,
			IsFeatured:       false,
			Tags:             []string{"importado"},
			Images: []domain.ProductImage{
				{ID: "img-5-1", URL: "https://placehold.co/600x600?text=Pringles", Alt: "Pringles Original", IsPrimary: true, Order: 1},
			},
			CreatedAt: seedTime.Add(96 * time.Hour),
			UpdatedAt: seedTime.Add(96 * time.Hour),
		},
		{
			ID:               "prod-6",
			Name:             "Alfajor Triple Retirado",
			Slug:             "alfajor-triple-retirado",
			SKU:              "ALF-TRI-070",
			Description:      "Alfajor triple de dulce de leche. Fuera de catalogo.",
			ShortDescription: "Descontinuado",
			Price:            950,
			Stock:            15,
			CategoryID:       "cat-2",
			IsActive:         false,
			IsFeatured:       false,
			Tags:             []string{"descontinuado"},
			CreatedAt:        seedTime.Add(120 * time.Hour),
			UpdatedAt:        seedTime.Add(120 * time.Hour),
		},
	}
}
