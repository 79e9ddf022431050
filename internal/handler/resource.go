package handler

import (
	"context"
	"net/http"
	"terea-store/internal/utils"

	"github.com/go-chi/chi/v5"
)

// resource exposes list/get/create/update/delete for one admin table.
type resource[T any, In any] struct {
	list   func(ctx context.Context, page utils.Page) ([]T, int64, error)
	get    func(ctx context.Context, id int64) (T, error)
	create func(ctx context.Context, input In) (T, error)
	update func(ctx context.Context, id int64, input In) (T, error)
	remove func(ctx context.Context, id int64) error
}

func (res resource[T, In]) mount(r chi.Router) {
	r.Get("/", res.handleList)
	r.Post("/", res.handleCreate)
	r.Get("/{id}", res.handleGet)
	r.Put("/{id}", res.handleUpdate)
	r.Delete("/{id}", res.handleDelete)
}

func (res resource[T, In]) handleList(w http.ResponseWriter, r *http.Request) {
	page, err := utils.ParsePage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, total, err := res.list(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(items, page, total))
}

func (res resource[T, In]) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := res.get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, item)
}

func (res resource[T, In]) handleCreate(w http.ResponseWriter, r *http.Request) {
	var input In
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := res.create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, item)
}

func (res resource[T, In]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input In
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := res.update(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, item)
}

func (res resource[T, In]) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := res.remove(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
