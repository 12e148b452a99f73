package domain

import "errors"

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("line quantity must be positive")
	ErrOrderNotFound   = errors.New("order not found")
)
