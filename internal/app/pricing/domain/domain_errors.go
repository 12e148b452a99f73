package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is not active")
	ErrOutOfStock      = errors.New("product is out of stock")

	// Promotion errors
	ErrPromotionNotFound      = errors.New("promotion not found")
	ErrInvalidPromotionType   = errors.New("promotion type must be percent or fixed")
	ErrInvalidPromotionScope  = errors.New("promotion scope must be all, category or product")
	ErrInvalidPromotionValue  = errors.New("promotion value is out of range")
	ErrMissingTargets         = errors.New("category and product scoped promotions require target ids")
	ErrInvalidPromotionWindow = errors.New("promotion end must not be before start")
	ErrEmptyPromotionName     = errors.New("promotion name cannot be empty")
)
