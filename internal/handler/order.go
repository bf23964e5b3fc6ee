package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

type orderItemRequest struct {
	Type                model.ItemType `json:"type" validate:"required,oneof=product service"`
	ItemID              string         `json:"item_id" validate:"required"`
	Name                string         `json:"name" validate:"required"`
	BasePrice           float64        `json:"base_price" validate:"gte=0"`
	ItemDiscountPercent float64        `json:"item_discount_percent" validate:"gte=0,lte=100"`
	Quantity            int            `json:"quantity" validate:"gt=0"`
	Duration            *int           `json:"duration"`
	MasterName          string         `json:"master_name"`
	DateTime            string         `json:"date_time"`
	TotalAmount         float64        `json:"total_amount" validate:"gte=0"`
}

type orderCreateRequest struct {
	UserID          string             `json:"user_id" validate:"required"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount     float64            `json:"total_amount" validate:"gte=0"`
	DiscountPercent float64            `json:"discount_percent" validate:"gte=0,lte=100"`
}

// CreateOrder оформляет заказ и обновляет накопления клиента.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderCreateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{
			Type:                it.Type,
			ItemID:              it.ItemID,
			Name:                it.Name,
			BasePrice:           it.BasePrice,
			ItemDiscountPercent: it.ItemDiscountPercent,
			Quantity:            it.Quantity,
			Duration:            it.Duration,
			MasterName:          it.MasterName,
			DateTime:            it.DateTime,
			TotalAmount:         it.TotalAmount,
		})
	}

	order, err := h.service.CreateOrder(r.Context(), req.UserID, items, req.TotalAmount, req.DiscountPercent)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, order)
}

// ListOrders возвращает заказы клиента, новые первыми.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	orders, err := h.service.GetOrdersByUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	h.writeJSON(w, http.StatusOK, orders)
}

// GetOrder возвращает заказ по идентификатору.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus меняет статус заказа.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateOrderStatus(r.Context(), chi.URLParam(r, "orderID"), model.OrderStatus(status)); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Order status updated"})
}
