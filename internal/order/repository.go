package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"terea-store/internal/db"
	"terea-store/internal/logger"
	"terea-store/internal/utils"

	"go.uber.org/zap"
)

type Repository interface {
	// CreateOrderTx determines the first-order flag and inserts the order
	// with its items in one transaction, filling in the generated ids,
	// created_at and IsFirstOrder on o.
	CreateOrderTx(ctx context.Context, o *Order) error
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	ListOrders(ctx context.Context, page utils.Page) ([]*Order, int64, error)
	UpdateOrder(ctx context.Context, id int64, in UpdateOrderInput) error
	DeleteOrder(ctx context.Context, id int64) error
	GetItem(ctx context.Context, id int64) (*OrderItem, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, customer_name, phone_number, is_delivery, city, address, total_amount, is_first_order, created_at`

const itemColumns = `id, order_id, product_name, quantity, price_at_time_of_order`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.CustomerName,
		&o.PhoneNumber,
		&o.IsDelivery,
		&o.City,
		&o.Address,
		&o.TotalAmount,
		&o.IsFirstOrder,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanItem(row rowScanner) (*OrderItem, error) {
	var it OrderItem
	if err := row.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Quantity, &it.Price); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Int("items", len(o.Items)),
	)

	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		// Check-then-insert: concurrent first orders from one phone number
		// may both be flagged as first.
		var hasPrior bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM orders WHERE phone_number = $1)`,
			o.PhoneNumber,
		).Scan(&hasPrior); err != nil {
			return fmt.Errorf("check prior orders: %w", err)
		}
		o.IsFirstOrder = !hasPrior

		if err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (customer_name, phone_number, is_delivery, city, address, total_amount, is_first_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at`,
			o.CustomerName,
			o.PhoneNumber,
			o.IsDelivery,
			utils.NullIfEmpty(o.City),
			utils.NullIfEmpty(o.Address),
			o.TotalAmount,
			o.IsFirstOrder,
		).Scan(&o.ID, &o.CreatedAt); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i := range o.Items {
			it := &o.Items[i]
			it.OrderID = o.ID

			if err := tx.QueryRowContext(ctx, `
				INSERT INTO order_items (order_id, product_name, quantity, price_at_time_of_order)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				it.OrderID, it.ProductName, it.Quantity, it.Price,
			).Scan(&it.ID); err != nil {
				return fmt.Errorf("insert order item %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error("create order transaction failed", zap.Error(err))
		return err
	}

	log.Info("order persisted",
		zap.Int64("order_id", o.ID),
		zap.Bool("is_first_order", o.IsFirstOrder),
	)
	return nil
}

func (r *repository) GetOrderByID(ctx context.Context, id int64) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetOrderByID"),
		zap.Int64("order_id", id),
	)

	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		log.Error("failed to load order", zap.Error(err))
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM order_items WHERE order_id = $1 ORDER BY id`, id,
	)
	if err != nil {
		log.Error("failed to load order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	o.Items = []OrderItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, err
		}
		o.Items = append(o.Items, *it)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, err
	}

	return o, nil
}

func (r *repository) ListOrders(ctx context.Context, page utils.Page) ([]*Order, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListOrders"),
		zap.Int("skip", page.Skip),
		zap.Int("limit", page.Limit),
	)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		log.Error("DB count failed", zap.Error(err))
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY id DESC LIMIT $1 OFFSET $2`,
		page.Limit, page.Skip,
	)
	if err != nil {
		log.Error("DB query failed", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, 0, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, 0, err
	}

	return orders, total, nil
}

// UpdateOrder applies the non-nil editable fields. Items, totals and the
// first-order flag are never touched.
func (r *repository) UpdateOrder(ctx context.Context, id int64, in UpdateOrderInput) error {
	sets := []string{}
	args := []interface{}{}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.CustomerName != nil {
		add("customer_name", *in.CustomerName)
	}
	if in.PhoneNumber != nil {
		add("phone_number", *in.PhoneNumber)
	}
	if in.IsDelivery != nil {
		add("is_delivery", *in.IsDelivery)
	}
	if in.City != nil {
		add("city", utils.NullIfEmpty(in.City))
	}
	if in.Address != nil {
		add("address", utils.NullIfEmpty(in.Address))
	}

	if len(sets) == 0 {
		return ErrNothingToUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update order", zap.Int64("order_id", id), zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// DeleteOrder removes the order; its items go with it via ON DELETE CASCADE.
func (r *repository) DeleteOrder(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete order", zap.Int64("order_id", id), zap.Error(err))
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) GetItem(ctx context.Context, id int64) (*OrderItem, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM order_items WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderItemNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load order item", zap.Int64("item_id", id), zap.Error(err))
		return nil, err
	}
	return it, nil
}
