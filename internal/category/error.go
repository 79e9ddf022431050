package category

import "errors"

var (
	ErrNotFound     = errors.New("category not found")
	ErrInvalidInput = errors.New("invalid category input")
	ErrInUse        = errors.New("category still has products")
	ErrUnknownLine  = errors.New("unknown product line")
)
