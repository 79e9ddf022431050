package handler

import (
	"net/http"
	"terea-store/internal/category"
	"terea-store/internal/order"
	"terea-store/internal/product"
	"terea-store/internal/user"
	"terea-store/internal/utils"

	"github.com/go-chi/chi/v5"
)

const AppName = "terea-store"

type Handler struct {
	products     product.Service
	categories   category.Service
	orders       order.Service
	admins       user.Service
	secureCookie bool
}

func New(
	products product.Service,
	categories category.Service,
	orders order.Service,
	admins user.Service,
	secureCookie bool,
) *Handler {
	return &Handler{
		products:     products,
		categories:   categories,
		orders:       orders,
		admins:       admins,
		secureCookie: secureCookie,
	}
}

// RegisterRoutes mounts the storefront and admin API on r. requireAdmin
// guards every /admin route except login and logout; adminMW runs after it
// and so sees the authenticated admin in the context.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	requireAdmin func(http.Handler) http.Handler,
	adminMW ...func(http.Handler) http.Handler,
) {
	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.handleCatalog)
		r.Get("/devices", listKeyed("devices", h.products.ListDevices))
		r.Get("/devices/{id}", getKeyed("device", h.products.GetDevice))
		r.Get("/heated-devices", listKeyed("heated_devices", h.products.ListHeatedDevices))
		r.Get("/heated-devices/{id}", getKeyed("heated_device", h.products.GetHeatedDevice))
		r.Get("/sticks", listKeyed("sticks", h.products.ListSticks))
		r.Get("/sticks/{id}", getKeyed("stick", h.products.GetStick))
	})

	r.Post("/orders", h.handleCreateOrder)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/logout", h.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Use(adminMW...)

			r.Get("/me", h.handleMe)
			r.Get("/stats", h.handleStats)

			for _, line := range category.Lines() {
				r.Route("/"+string(line)+"-categories", h.categoryResource(line).mount)
			}

			r.Route("/devices", resource[*product.Device, product.DeviceInput]{
				list:   h.products.ListDevices,
				get:    h.products.GetDevice,
				create: h.products.CreateDevice,
				update: h.products.UpdateDevice,
				remove: h.products.DeleteDevice,
			}.mount)
			r.Route("/heated-devices", resource[*product.HeatedDevice, product.HeatedDeviceInput]{
				list:   h.products.ListHeatedDevices,
				get:    h.products.GetHeatedDevice,
				create: h.products.CreateHeatedDevice,
				update: h.products.UpdateHeatedDevice,
				remove: h.products.DeleteHeatedDevice,
			}.mount)
			r.Route("/sticks", resource[*product.Stick, product.StickInput]{
				list:   h.products.ListSticks,
				get:    h.products.GetStick,
				create: h.products.CreateStick,
				update: h.products.UpdateStick,
				remove: h.products.DeleteStick,
			}.mount)

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.handleListOrders)
				r.Get("/{id}", h.handleGetOrder)
				r.Patch("/{id}", h.handleUpdateOrder)
				r.Delete("/{id}", h.handleDeleteOrder)
				r.Get("/{id}/items", h.handleListOrderItems)
			})
			r.Get("/order-items/{id}", h.handleGetOrderItem)
		})
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"name":  AppName,
		"admin": "/admin",
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
