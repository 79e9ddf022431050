package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"terea-store/internal/logger"
	"terea-store/internal/metrics"
	"terea-store/internal/utils"
	"terea-store/internal/validation"

	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetOrder(ctx context.Context, id int64) (*Order, error)
	ListOrders(ctx context.Context, page utils.Page) ([]*Order, int64, error)
	UpdateOrder(ctx context.Context, id int64, input UpdateOrderInput) (*Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	ListItems(ctx context.Context, orderID int64) ([]OrderItem, error)
	GetItem(ctx context.Context, id int64) (*OrderItem, error)
	Stats() metrics.OrderSnapshot
}

type service struct {
	repo  Repository
	stats *metrics.OrderStats
}

func NewService(repo Repository, stats *metrics.OrderStats) Service {
	if stats == nil {
		stats = &metrics.OrderStats{}
	}
	return &service{repo: repo, stats: stats}
}

func (s *service) Stats() metrics.OrderSnapshot {
	return s.stats.Snapshot()
}

// CreateOrder validates the input, computes the total and persists the
// order atomically. Store failures surface as ErrCreateFailed.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)
	timer := metrics.StartTimer()

	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	for i := range input.Items {
		input.Items[i].ProductName = strings.TrimSpace(input.Items[i].ProductName)
	}

	if err := validation.Struct(input); err != nil {
		s.stats.Rejected.Inc()
		log.Warn("order rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	items := toOrderItems(input.Items)
	o := &Order{
		CustomerName: input.CustomerName,
		PhoneNumber:  input.PhoneNumber,
		IsDelivery:   *input.IsDelivery,
		City:         input.City,
		Address:      input.Address,
		TotalAmount:  CalculateTotal(items),
		Items:        items,
	}

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		s.stats.Failed.Inc()
		log.Error("order creation failed",
			zap.Int("items", len(items)),
			zap.Error(err),
		)
		return nil, ErrCreateFailed
	}

	s.stats.Created.Inc()
	if o.IsFirstOrder {
		s.stats.FirstOrders.Inc()
	}

	log.Info("order created",
		zap.Int64("order_id", o.ID),
		zap.Bool("is_first_order", o.IsFirstOrder),
		zap.String("total_amount", o.TotalAmount.String()),
		zap.Int("items", len(o.Items)),
		zap.Duration("duration", timer.Duration()),
	)

	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id int64) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) ListOrders(ctx context.Context, page utils.Page) ([]*Order, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return s.repo.ListOrders(ctx, page)
}

func (s *service) UpdateOrder(ctx context.Context, id int64, input UpdateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateOrder"),
		zap.Int64("order_id", id),
	)

	if input.CustomerName != nil {
		name := strings.TrimSpace(*input.CustomerName)
		input.CustomerName = &name
	}
	if input.PhoneNumber != nil {
		phone := strings.TrimSpace(*input.PhoneNumber)
		input.PhoneNumber = &phone
	}

	if input.IsEmpty() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, ErrNothingToUpdate)
	}
	if err := validation.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	if err := s.repo.UpdateOrder(ctx, id, input); err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
		}
		return nil, err
	}

	log.Info("order updated")
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order deleted",
		zap.String("layer", "service"),
		zap.Int64("order_id", id),
	)
	return nil
}

func (s *service) ListItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return o.Items, nil
}

func (s *service) GetItem(ctx context.Context, id int64) (*OrderItem, error) {
	return s.repo.GetItem(ctx, id)
}
