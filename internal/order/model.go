package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           int64
	CustomerName string
	PhoneNumber  string
	IsDelivery   bool
	City         *string
	Address      *string
	TotalAmount  decimal.Decimal
	IsFirstOrder bool
	CreatedAt    time.Time
	Items        []OrderItem
}

// OrderItem snapshots the product name and unit price at order time;
// it does not reference catalog rows.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

type CreateOrderInput struct {
	CustomerName string                 `json:"customer_name" validate:"required,max=256"`
	PhoneNumber  string                 `json:"phone_number" validate:"required,min=10,max=32"`
	IsDelivery   *bool                  `json:"is_delivery" validate:"required"`
	City         *string                `json:"city" validate:"omitempty,max=256"`
	Address      *string                `json:"address" validate:"omitempty,max=1000"`
	Items        []CreateOrderItemInput `json:"ordered_items" validate:"dive"`
}

// CreateOrderItemInput is one ordered line. A missing price is rejected
// rather than read as zero.
type CreateOrderItemInput struct {
	ProductName string           `json:"product_name" validate:"required,max=256"`
	Quantity    int              `json:"quantity" validate:"gt=0"`
	Price       *decimal.Decimal `json:"price_at_time_of_order" validate:"required,money"`
}

// UpdateOrderInput carries the administratively editable fields; nil means unchanged.
type UpdateOrderInput struct {
	CustomerName *string `json:"customer_name" validate:"omitempty,min=1,max=256"`
	PhoneNumber  *string `json:"phone_number" validate:"omitempty,min=10,max=32"`
	IsDelivery   *bool   `json:"is_delivery"`
	City         *string `json:"city" validate:"omitempty,max=256"`
	Address      *string `json:"address" validate:"omitempty,max=1000"`
}

func (in UpdateOrderInput) IsEmpty() bool {
	return in.CustomerName == nil &&
		in.PhoneNumber == nil &&
		in.IsDelivery == nil &&
		in.City == nil &&
		in.Address == nil
}

// CalculateTotal sums quantity × unit price with exact decimal arithmetic.
func CalculateTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
