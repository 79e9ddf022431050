package handler

import (
	"net/http"
	"terea-store/internal/order"
	"terea-store/internal/utils"
)

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var input order.CreateOrderInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.orders.CreateOrder(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"order": order.ToOrderResponse(o, true),
	})
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	page, err := utils.ParsePage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	orders, total, err := h.orders.ListOrders(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]*order.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, order.ToOrderResponse(o, false))
	}

	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(resp, page, total))
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, order.ToOrderResponse(o, true))
}

func (h *Handler) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input order.UpdateOrderInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.orders.UpdateOrder(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, order.ToOrderResponse(o, true))
}

func (h *Handler) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.orders.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListOrderItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.orders.ListItems(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]order.OrderItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, order.ToOrderItemResponse(it))
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"ordered_items": resp})
}

func (h *Handler) handleGetOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	it, err := h.orders.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, order.ToOrderItemResponse(*it))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.orders.Stats())
}
