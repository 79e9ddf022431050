package handler

import (
	"context"
	"net/http"
	"terea-store/internal/category"
	"terea-store/internal/utils"
)

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.products.GetCatalog(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, catalog)
}

// listKeyed serves a paged storefront listing under the given key,
// e.g. {"devices": [...], "skip": 0, "limit": 50, "total": 3}.
func listKeyed[T any](key string, list func(context.Context, utils.Page) ([]T, int64, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := utils.ParsePage(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		items, total, err := list(r.Context(), page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if items == nil {
			items = []T{}
		}

		utils.WriteJSON(w, http.StatusOK, map[string]any{
			key:     items,
			"skip":  page.Skip,
			"limit": page.Limit,
			"total": total,
		})
	}
}

func getKeyed[T any](key string, get func(context.Context, int64) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		item, err := get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, map[string]any{key: item})
	}
}

func (h *Handler) categoryResource(line category.Line) resource[*category.Category, category.Input] {
	return resource[*category.Category, category.Input]{
		list: func(ctx context.Context, page utils.Page) ([]*category.Category, int64, error) {
			return h.categories.List(ctx, line, page)
		},
		get: func(ctx context.Context, id int64) (*category.Category, error) {
			return h.categories.Get(ctx, line, id)
		},
		create: func(ctx context.Context, input category.Input) (*category.Category, error) {
			return h.categories.Create(ctx, line, input)
		},
		update: func(ctx context.Context, id int64, input category.Input) (*category.Category, error) {
			return h.categories.Update(ctx, line, id, input)
		},
		remove: func(ctx context.Context, id int64) error {
			return h.categories.Delete(ctx, line, id)
		},
	}
}
