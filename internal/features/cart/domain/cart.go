package domain

import (
	"time"

	catalog "snack-store/internal/features/catalog/domain"

	"github.com/google/uuid"
)

// Item is one line in the cart: a product snapshot at one quantity.
// The snapshot may go stale between mutations; callers refresh it from the
// catalog before every mutating operation.
type Item struct {
	// ID is the generated line id, unique per add-to-cart event.
	ID string `json:"id"`
	// Product is the catalog snapshot captured when the line was created or
	// last refreshed.
	Product catalog.Product `json:"product"`
	// Quantity is always >= 1.
	Quantity int `json:"quantity"`
	// AddedAt is when the line was first created.
	AddedAt time.Time `json:"addedAt"`
}

// Subtotal returns the effective price of the line.
func (i *Item) Subtotal() float64 {
	return i.Product.EffectivePrice() * float64(i.Quantity)
}

// Cart is the aggregate owning all line items for one session.
// At most one line exists per product id; adding the same product again
// merges into the existing line.
type Cart struct {
	Items []Item `json:"items"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Items: []Item{}}
}

// AddItem adds a product to the cart, merging into an existing line when the
// product is already present. Quantities below 1 are treated as 1.
// Returns *OutOfStockError when the requested quantity exceeds the product's
// current stock, or ErrProductInactive for non-purchasable products.
func (c *Cart) AddItem(product catalog.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	if product.Stock < quantity {
		return &OutOfStockError{ProductID: product.ID, Available: product.Stock}
	}

	if !product.IsActive {
		return ErrProductInactive
	}

	if existing := c.ItemByProductID(product.ID); existing != nil {
		newQuantity := existing.Quantity + quantity
		if product.Stock < newQuantity {
			return &OutOfStockError{
				ProductID: product.ID,
				Available: product.Stock - existing.Quantity,
			}
		}
		existing.Quantity = newQuantity
		existing.Product = product
		return nil
	}

	c.Items = append(c.Items, Item{
		ID:       uuid.NewString(),
		Product:  product,
		Quantity: quantity,
		AddedAt:  time.Now(),
	})
	return nil
}

// UpdateQuantity replaces a line's quantity exactly. A quantity of zero or
// less removes the line. Returns ErrItemNotFound for an unknown line id and
// *OutOfStockError when the quantity exceeds the snapshot's stock.
func (c *Cart) UpdateQuantity(itemID string, quantity int) error {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return nil
	}

	item := c.ItemByID(itemID)
	if item == nil {
		return ErrItemNotFound
	}

	if item.Product.Stock < quantity {
		return &OutOfStockError{ProductID: item.Product.ID, Available: item.Product.Stock}
	}

	item.Quantity = quantity
	return nil
}

// RemoveItem removes a line by id. Removing an absent id is a no-op.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = []Item{}
}

// ItemCount returns the sum of quantities across all lines, not the line count.
func (c *Cart) ItemCount() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}
	return total
}

// ItemByID returns the line with the given id, or nil.
func (c *Cart) ItemByID(itemID string) *Item {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// ItemByProductID returns the line holding the given product, or nil.
func (c *Cart) ItemByProductID(productID string) *Item {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// RefreshProduct replaces the stale snapshot on the line holding the product,
// if present. Quantity and line identity are untouched.
func (c *Cart) RefreshProduct(product catalog.Product) {
	if item := c.ItemByProductID(product.ID); item != nil {
		item.Product = product
	}
}

// Subtotal returns the sum of line subtotals at effective prices.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for i := range c.Items {
		total += c.Items[i].Subtotal()
	}
	return total
}
