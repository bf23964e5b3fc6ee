package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

type loyaltyRuleRequest struct {
	MinTotalAmount  float64 `json:"min_total_amount" validate:"gte=0"`
	BonusPoints     int     `json:"bonus_points" validate:"gte=0"`
	DiscountPercent float64 `json:"discount_percent" validate:"gte=0,lte=100"`
}

// CreateLoyaltyRule добавляет ступень программы лояльности.
func (h *Handler) CreateLoyaltyRule(w http.ResponseWriter, r *http.Request) {
	var req loyaltyRuleRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	rule, err := h.service.CreateLoyaltyRule(r.Context(), &model.LoyaltyRule{
		MinTotalAmount:  req.MinTotalAmount,
		BonusPoints:     req.BonusPoints,
		DiscountPercent: req.DiscountPercent,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rule)
}

// ListLoyaltyRules возвращает все ступени по возрастанию порога.
func (h *Handler) ListLoyaltyRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.service.ListLoyaltyRules(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if rules == nil {
		rules = []model.LoyaltyRule{}
	}

	h.writeJSON(w, http.StatusOK, rules)
}

// UpdateLoyaltyRule заменяет параметры ступени.
func (h *Handler) UpdateLoyaltyRule(w http.ResponseWriter, r *http.Request) {
	var req loyaltyRuleRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	rule, err := h.service.UpdateLoyaltyRule(r.Context(), chi.URLParam(r, "ruleID"), &model.LoyaltyRule{
		MinTotalAmount:  req.MinTotalAmount,
		BonusPoints:     req.BonusPoints,
		DiscountPercent: req.DiscountPercent,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rule)
}

// DeleteLoyaltyRule удаляет ступень программы лояльности.
func (h *Handler) DeleteLoyaltyRule(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteLoyaltyRule(r.Context(), chi.URLParam(r, "ruleID")); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Loyalty rule deleted"})
}
