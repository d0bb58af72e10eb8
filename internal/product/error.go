package product

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidPrice     = errors.New("price must be greater than zero")
	ErrEmptyName        = errors.New("product name cannot be empty")
)
