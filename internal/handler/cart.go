package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

// GetCart возвращает корзину клиента, создавая пустую при первом обращении.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.GetCart(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, cart)
}

type cartItemRequest struct {
	Type            model.ItemType `json:"type" validate:"required,oneof=product service"`
	ItemID          string         `json:"item_id" validate:"required"`
	Name            string         `json:"name" validate:"required"`
	Price           float64        `json:"price" validate:"gte=0"`
	DiscountPercent float64        `json:"discount_percent" validate:"gte=0,lte=100"`
	Quantity        int            `json:"quantity" validate:"gte=0"`
	Image           string         `json:"image"`
	Duration        *int           `json:"duration"`
	MasterName      string         `json:"master_name"`
	DateTime        string         `json:"date_time"`
}

// AddCartItem добавляет позицию в корзину клиента.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item := model.CartItem{
		Type:            req.Type,
		ItemID:          req.ItemID,
		Name:            req.Name,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		Quantity:        req.Quantity,
		Image:           req.Image,
		Duration:        req.Duration,
		MasterName:      req.MasterName,
		DateTime:        req.DateTime,
	}

	cart, err := h.service.AddCartItem(r.Context(), chi.URLParam(r, "userID"), item)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, cart)
}

// SetCartItemQuantity устанавливает количество позиции; ноль удаляет её.
func (h *Handler) SetCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	cart, err := h.service.SetCartItemQuantity(r.Context(),
		chi.URLParam(r, "userID"), chi.URLParam(r, "itemID"), quantity)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, cart)
}

// RemoveCartItem удаляет позицию из корзины.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.RemoveCartItem(r.Context(),
		chi.URLParam(r, "userID"), chi.URLParam(r, "itemID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, cart)
}

// ClearCart очищает корзину клиента.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.ClearCart(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, cart)
}
