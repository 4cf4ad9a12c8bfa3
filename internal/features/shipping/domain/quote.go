package domain

// Quote is the derived shipping calculation for a cart subtotal.
// It is never stored; it is recomputed whenever the subtotal changes.
type Quote struct {
	// Shipping is the cost to charge, zero when free shipping applies.
	Shipping float64 `json:"shipping"`
	// FreeShippingThreshold is the configured subtotal at which shipping
	// becomes free.
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	// IsFreeShipping reports whether the subtotal reached the threshold.
	IsFreeShipping bool `json:"isFreeShipping"`
	// AmountNeededForFreeShipping is how much more the buyer must add to
	// reach free shipping; zero when already eligible.
	AmountNeededForFreeShipping float64 `json:"amountNeededForFreeShipping"`
}

// LocalityHint carries destination details for future zone-based pricing.
// The flat-rate calculator accepts it but never lets it alter the result.
type LocalityHint struct {
	PostalCode string `json:"postalCode,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
}
