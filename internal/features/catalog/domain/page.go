package domain

import "errors"

// ErrProductNotFound is returned when a product id or slug does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductPage is one page of a filtered, sorted product listing.
type ProductPage struct {
	Products   []Product `json:"products"`
	Page       int       `json:"page"`
	PerPage    int       `json:"perPage"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
}
