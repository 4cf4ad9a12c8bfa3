package service

import (
	"snack-store/internal/core/config"
	"snack-store/internal/features/shipping/domain"
)

// FlatRateCalculator implements ports.Calculator with a single flat rate and
// a free-shipping threshold, both read from configuration.
type FlatRateCalculator struct {
	threshold float64
	baseCost  float64
}

// NewFlatRateCalculator creates a calculator from the shipping configuration.
func NewFlatRateCalculator(cfg config.ShippingConfig) *FlatRateCalculator {
	return &FlatRateCalculator{
		threshold: cfg.FreeShippingThreshold,
		baseCost:  cfg.BaseCost,
	}
}

// Quote derives the shipping cost for a subtotal. Subtotals at or above the
// threshold ship free. Negative subtotals are clamped to zero; upstream
// guarantees non-negative input, so a negative value is treated as an empty
// cart rather than an error.
//
// The locality hint is an extension point for zone-based pricing and does not
// affect the flat-rate result.
func (c *FlatRateCalculator) Quote(subtotal float64, hint *domain.LocalityHint) domain.Quote {
	if subtotal < 0 {
		subtotal = 0
	}

	isFree := subtotal >= c.threshold

	shipping := c.baseCost
	if isFree {
		shipping = 0
	}

	amountNeeded := c.threshold - subtotal
	if amountNeeded < 0 {
		amountNeeded = 0
	}

	return domain.Quote{
		Shipping:                    shipping,
		FreeShippingThreshold:       c.threshold,
		IsFreeShipping:              isFree,
		AmountNeededForFreeShipping: amountNeeded,
	}
}
