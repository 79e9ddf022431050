package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"terea-store/internal/category"
	"terea-store/internal/logger"
	"terea-store/internal/order"
	"terea-store/internal/product"
	"terea-store/internal/user"
	"terea-store/internal/utils"
	"terea-store/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var (
	errMalformedBody = errors.New("malformed request body")
	errInvalidID     = errors.New("invalid id")
)

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errMalformedBody, err)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		return 0, errInvalidID
	}
	return id, nil
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errMalformedBody),
		errors.Is(err, errInvalidID),
		errors.Is(err, utils.ErrInvalidPage),
		errors.Is(err, order.ErrInvalidOrder),
		errors.Is(err, product.ErrInvalidInput),
		errors.Is(err, product.ErrUnknownCategory),
		errors.Is(err, category.ErrInvalidInput),
		errors.Is(err, category.ErrUnknownLine),
		errors.Is(err, user.ErrInvalidInput):
		return http.StatusBadRequest

	case errors.Is(err, user.ErrUnauthorized),
		errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrOrderItemNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, category.ErrNotFound),
		errors.Is(err, user.ErrAdminNotFound):
		return http.StatusNotFound

	case errors.Is(err, user.ErrUsernameExists),
		errors.Is(err, category.ErrInUse):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a JSON error body. Server-side failures are
// logged and reported with an opaque message unless the caller is a
// trusted internal service.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	if status >= http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("layer", "handler"),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)

		msg := "internal server error"
		switch {
		case errors.Is(err, order.ErrCreateFailed):
			msg = order.ErrCreateFailed.Error()
		case utils.IsInternalRequest(r.Context()):
			msg = err.Error()
		}
		utils.WriteJSONError(w, msg, status)
		return
	}

	if details, ok := validation.Details(err); ok {
		utils.WriteJSON(w, status, map[string]any{
			"error":   "validation failed",
			"details": details,
		})
		return
	}

	utils.WriteJSONError(w, err.Error(), status)
}
