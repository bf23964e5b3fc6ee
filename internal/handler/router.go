package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/okhrimenko/rangemart-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса rangemart.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Root)
		r.Post("/seed", h.Seed)

		r.Route("/catalogs", func(r chi.Router) {
			r.Post("/", h.CreateCatalog)
			r.Get("/", h.ListCatalogs)
			r.Get("/{catalogID}", h.GetCatalog)
			r.Put("/{catalogID}", h.UpdateCatalog)
			r.Delete("/{catalogID}", h.DeleteCatalog)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", h.CreateProduct)
			r.Get("/", h.ListProducts)
			r.Get("/{productID}", h.GetProduct)
			r.Put("/{productID}", h.UpdateProduct)
			r.Delete("/{productID}", h.DeleteProduct)
		})

		r.Route("/services", func(r chi.Router) {
			r.Post("/", h.CreateRangeService)
			r.Get("/", h.ListRangeServices)
			r.Get("/{serviceID}", h.GetRangeService)
			r.Put("/{serviceID}", h.UpdateRangeService)
			r.Delete("/{serviceID}", h.DeleteRangeService)
			r.Get("/{serviceID}/masters", h.ListMastersForService)
		})

		r.Route("/masters", func(r chi.Router) {
			r.Post("/", h.CreateMaster)
			r.Get("/", h.ListMasters)
			r.Get("/{masterID}", h.GetMaster)
			r.Put("/{masterID}", h.UpdateMaster)
			r.Delete("/{masterID}", h.DeleteMaster)
			r.Post("/{masterID}/services/{serviceID}", h.LinkMasterService)
			r.Delete("/{masterID}/services/{serviceID}", h.UnlinkMasterService)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Get("/", h.ListUsers)
			r.Post("/check-admin", h.CheckAdmin)
			r.Get("/phone/{phone}", h.GetUserByPhone)
			r.Get("/{userID}", h.GetUser)
			r.Get("/{userID}/card", h.GetUserCard)
		})

		r.Route("/cart/{userID}", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddCartItem)
			r.Put("/items/{itemID}", h.SetCartItemQuantity)
			r.Delete("/items/{itemID}", h.RemoveCartItem)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.CreateOrder)
			r.Get("/", h.ListOrders)
			r.Get("/{orderID}", h.GetOrder)
			r.Put("/{orderID}/status", h.UpdateOrderStatus)
		})

		r.Route("/loyalty-rules", func(r chi.Router) {
			r.Post("/", h.CreateLoyaltyRule)
			r.Get("/", h.ListLoyaltyRules)
			r.Put("/{ruleID}", h.UpdateLoyaltyRule)
			r.Delete("/{ruleID}", h.DeleteLoyaltyRule)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.Put("/", h.UpdateSettings)
			r.Get("/has-admin-phones", h.HasAdminPhones)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
