package order

import "errors"

var (
	ErrInvalidOrder      = errors.New("invalid order")
	ErrNothingToUpdate   = errors.New("no fields to update")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrCreateFailed      = errors.New("order creation failed")
)
