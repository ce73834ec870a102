package entity

import "errors"

var (
	// ErrInvalidQuantity is returned for order commands with quantity <= 0.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")

	// ErrProductNotFound is returned when no active product's number matches
	// the command's number token.
	ErrProductNotFound = errors.New("product not found")
)
