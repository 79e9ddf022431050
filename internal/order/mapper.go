package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ID                 int64           `json:"id"`
	OrderID            int64           `json:"order_id"`
	ProductName        string          `json:"product_name"`
	Quantity           int             `json:"quantity"`
	PriceAtTimeOfOrder decimal.Decimal `json:"price_at_time_of_order"`
}

type OrderResponse struct {
	ID           int64                `json:"id"`
	CustomerName string               `json:"customer_name"`
	PhoneNumber  string               `json:"phone_number"`
	IsFirstOrder bool                 `json:"is_first_order"`
	IsDelivery   bool                 `json:"is_delivery"`
	City         *string              `json:"city"`
	Address      *string              `json:"address"`
	TotalAmount  decimal.Decimal      `json:"total_amount"`
	CreatedAt    time.Time            `json:"created_at"`
	OrderedItems *[]OrderItemResponse `json:"ordered_items,omitempty"`
}

func ToOrderItemResponse(it OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:                 it.ID,
		OrderID:            it.OrderID,
		ProductName:        it.ProductName,
		Quantity:           it.Quantity,
		PriceAtTimeOfOrder: it.Price,
	}
}

// ToOrderResponse maps an order; items are always present (possibly empty)
// when withItems is set.
func ToOrderResponse(o *Order, withItems bool) *OrderResponse {
	if o == nil {
		return nil
	}

	resp := &OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		PhoneNumber:  o.PhoneNumber,
		IsFirstOrder: o.IsFirstOrder,
		IsDelivery:   o.IsDelivery,
		City:         o.City,
		Address:      o.Address,
		TotalAmount:  o.TotalAmount,
		CreatedAt:    o.CreatedAt,
	}

	if withItems {
		items := make([]OrderItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, ToOrderItemResponse(it))
		}
		resp.OrderedItems = &items
	}

	return resp
}

// toOrderItems converts validated input lines into domain items.
func toOrderItems(in []CreateOrderItemInput) []OrderItem {
	items := make([]OrderItem, 0, len(in))
	for _, it := range in {
		price := decimal.Zero
		if it.Price != nil {
			price = *it.Price
		}
		items = append(items, OrderItem{
			ProductName: strings.TrimSpace(it.ProductName),
			Quantity:    it.Quantity,
			Price:       price,
		})
	}
	return items
}
