package ports

import "snack-store/internal/features/shipping/domain"

// Calculator defines the primary port for shipping quotes.
// Implementations must be total functions over non-negative subtotals.
type Calculator interface {
	Quote(subtotal float64, hint *domain.LocalityHint) domain.Quote
}
