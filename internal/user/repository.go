package user

import (
	"context"
	"database/sql"
	"errors"
	"terea-store/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, username, passwordHash string) (*AdminUser, error)
	FindByUsername(ctx context.Context, username string) (*AdminUser, error)
	FindByID(ctx context.Context, id int64) (*AdminUser, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const uniqueViolation = "23505"

func (r *repository) Create(ctx context.Context, username, passwordHash string) (*AdminUser, error) {
	log := logger.FromCtx(ctx)

	var u AdminUser
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO admin_users (username, password_hash) VALUES ($1, $2) RETURNING id, username, password_hash, created_at",
		username, passwordHash,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrUsernameExists
		}
		log.Error("db: failed to insert admin user",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*AdminUser, error) {
	return r.findOne(ctx,
		"SELECT id, username, password_hash, created_at FROM admin_users WHERE username = $1",
		username,
	)
}

func (r *repository) FindByID(ctx context.Context, id int64) (*AdminUser, error) {
	return r.findOne(ctx,
		"SELECT id, username, password_hash, created_at FROM admin_users WHERE id = $1",
		id,
	)
}

func (r *repository) findOne(ctx context.Context, query string, arg any) (*AdminUser, error) {
	var u AdminUser
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to load admin user", zap.Error(err))
		return nil, err
	}
	return &u, nil
}
