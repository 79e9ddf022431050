package utils

import "context"

type contextKey string

const (
	AdminIDKey       contextKey = "admin_id"
	AdminUsernameKey contextKey = "admin_username"
)

const internalRequestKey contextKey = "internal_request"

// SetAdminContext stores the authenticated admin (called by middleware).
func SetAdminContext(ctx context.Context, id int64, username string) context.Context {
	ctx = context.WithValue(ctx, AdminIDKey, id)
	ctx = context.WithValue(ctx, AdminUsernameKey, username)
	return ctx
}

func GetAdminIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(AdminIDKey).(int64)
	return id, ok
}

func GetAdminUsernameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(AdminUsernameKey).(string)
	return name
}

func WithInternalRequest(ctx context.Context) context.Context {
	return context.WithValue(ctx, internalRequestKey, true)
}

func IsInternalRequest(ctx context.Context) bool {
	v, _ := ctx.Value(internalRequestKey).(bool)
	return v
}
