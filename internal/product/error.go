package product

import "errors"

var (
	ErrNotFound        = errors.New("product not found")
	ErrInvalidInput    = errors.New("invalid product input")
	ErrUnknownCategory = errors.New("category does not exist")
)
