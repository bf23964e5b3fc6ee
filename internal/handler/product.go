package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

type productCreateRequest struct {
	CatalogID        string   `json:"catalog_id" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description"`
	PriceUAH         float64  `json:"price_uah" validate:"gte=0"`
	DiscountPercent  float64  `json:"discount_percent" validate:"gte=0,lte=100"`
	Quantity         int      `json:"quantity" validate:"gte=0"`
	Weight           string   `json:"weight"`
	Color            string   `json:"color"`
	IsVisible        *bool    `json:"is_visible"`
	MainImage        string   `json:"main_image" validate:"required"`
	AdditionalImages []string `json:"additional_images"`
}

// CreateProduct создаёт товар в существующем каталоге.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productCreateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	p := &model.Product{
		CatalogID:        req.CatalogID,
		Name:             req.Name,
		Description:      req.Description,
		PriceUAH:         req.PriceUAH,
		DiscountPercent:  req.DiscountPercent,
		Quantity:         req.Quantity,
		Weight:           req.Weight,
		Color:            req.Color,
		IsVisible:        true,
		MainImage:        req.MainImage,
		AdditionalImages: req.AdditionalImages,
	}
	if req.IsVisible != nil {
		p.IsVisible = *req.IsVisible
	}

	created, err := h.service.CreateProduct(r.Context(), p)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, created)
}

// ListProducts возвращает товары с фильтрами по каталогу и видимости.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	catalogID := r.URL.Query().Get("catalog_id")
	visibleOnly := r.URL.Query().Get("visible_only") == "true"

	products, err := h.service.ListProducts(r.Context(), catalogID, visibleOnly)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	h.writeJSON(w, http.StatusOK, products)
}

// GetProduct возвращает товар по идентификатору.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, product)
}

// UpdateProduct применяет частичное обновление товара.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var upd model.ProductUpdate
	if !h.decodeAndValidate(w, r, &upd) {
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "productID"), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, product)
}

// DeleteProduct удаляет товар.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "productID")); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Product deleted"})
}
