package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"terea-store/internal/logger"
	"terea-store/internal/utils"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, line Line, page utils.Page) ([]*Category, int64, error)
	GetByID(ctx context.Context, line Line, id int64) (*Category, error)
	Create(ctx context.Context, line Line, name string) (*Category, error)
	Update(ctx context.Context, line Line, id int64, name string) (*Category, error)
	Delete(ctx context.Context, line Line, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const foreignKeyViolation = "23503"

func (r *repository) List(ctx context.Context, line Line, page utils.Page) ([]*Category, int64, error) {
	table, err := line.Table()
	if err != nil {
		return nil, 0, err
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
		zap.String("table", table),
		zap.Int("skip", page.Skip),
		zap.Int("limit", page.Limit),
	)

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&total); err != nil {
		log.Error("DB count failed", zap.Error(err))
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name FROM "+table+" ORDER BY id DESC LIMIT $1 OFFSET $2",
		page.Limit, page.Skip,
	)
	if err != nil {
		log.Error("DB query failed", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, 0, err
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, 0, err
	}

	return categories, total, nil
}

func (r *repository) GetByID(ctx context.Context, line Line, id int64) (*Category, error) {
	table, err := line.Table()
	if err != nil {
		return nil, err
	}

	var c Category
	err = r.db.QueryRowContext(ctx, "SELECT id, name FROM "+table+" WHERE id = $1", id).
		Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load category", zap.String("table", table), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, line Line, name string) (*Category, error) {
	table, err := line.Table()
	if err != nil {
		return nil, err
	}

	c := Category{Name: name}
	err = r.db.QueryRowContext(ctx,
		"INSERT INTO "+table+" (name) VALUES ($1) RETURNING id", name,
	).Scan(&c.ID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert category", zap.String("table", table), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, line Line, id int64, name string) (*Category, error) {
	table, err := line.Table()
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, "UPDATE "+table+" SET name = $1 WHERE id = $2", name, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update category", zap.String("table", table), zap.Error(err))
		return nil, err
	}
	if err := expectOneRow(res); err != nil {
		return nil, err
	}
	return &Category{ID: id, Name: name}, nil
}

func (r *repository) Delete(ctx context.Context, line Line, id int64) error {
	table, err := line.Table()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return ErrInUse
		}
		logger.FromCtx(ctx).Error("failed to delete category", zap.String("table", table), zap.Error(err))
		return err
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
