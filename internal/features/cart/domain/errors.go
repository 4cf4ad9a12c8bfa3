package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfStock is the match target for stock violations; the concrete
	// error is always an *OutOfStockError carrying the available count.
	ErrOutOfStock = errors.New("insufficient stock")
	// ErrProductInactive is returned when adding a product that is not purchasable.
	ErrProductInactive = errors.New("product is not available for purchase")
	// ErrItemNotFound is returned when a line item id does not exist in the cart.
	ErrItemNotFound = errors.New("item not found in cart")
)

// OutOfStockError reports a rejected mutation along with how many units can
// still be purchased, so the UI can show the exact available count.
type OutOfStockError struct {
	ProductID string
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: only %d units available", e.ProductID, e.Available)
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}
