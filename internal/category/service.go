package category

import (
	"context"
	"fmt"
	"strings"
	"terea-store/internal/logger"
	"terea-store/internal/utils"
	"terea-store/internal/validation"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, line Line, page utils.Page) ([]*Category, int64, error)
	Get(ctx context.Context, line Line, id int64) (*Category, error)
	Create(ctx context.Context, line Line, input Input) (*Category, error)
	Update(ctx context.Context, line Line, id int64, input Input) (*Category, error)
	Delete(ctx context.Context, line Line, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, line Line, page utils.Page) ([]*Category, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.repo.List(ctx, line, page)
}

func (s *service) Get(ctx context.Context, line Line, id int64) (*Category, error) {
	return s.repo.GetByID(ctx, line, id)
}

func (s *service) Create(ctx context.Context, line Line, input Input) (*Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validation.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	c, err := s.repo.Create(ctx, line, input.Name)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("category created",
		zap.String("layer", "service"),
		zap.String("line", string(line)),
		zap.Int64("category_id", c.ID),
	)
	return c, nil
}

func (s *service) Update(ctx context.Context, line Line, id int64, input Input) (*Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validation.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.repo.Update(ctx, line, id, input.Name)
}

func (s *service) Delete(ctx context.Context, line Line, id int64) error {
	if err := s.repo.Delete(ctx, line, id); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("category deleted",
		zap.String("layer", "service"),
		zap.String("line", string(line)),
		zap.Int64("category_id", id),
	)
	return nil
}
