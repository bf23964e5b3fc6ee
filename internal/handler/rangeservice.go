package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

type serviceCreateRequest struct {
	CatalogID              string  `json:"catalog_id" validate:"required"`
	Name                   string  `json:"name" validate:"required"`
	Description            string  `json:"description"`
	PriceUAH               float64 `json:"price_uah" validate:"gte=0"`
	IsVisible              *bool   `json:"is_visible"`
	HasTimeSelection       bool    `json:"has_time_selection"`
	HasDurationSelection   bool    `json:"has_duration_selection"`
	HasMasterSelection     bool    `json:"has_master_selection"`
	PriceDependsOnDuration bool    `json:"price_depends_on_duration"`
}

// CreateRangeService создаёт услугу в существующем каталоге.
func (h *Handler) CreateRangeService(w http.ResponseWriter, r *http.Request) {
	var req serviceCreateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	svc := &model.Service{
		CatalogID:              req.CatalogID,
		Name:                   req.Name,
		Description:            req.Description,
		PriceUAH:               req.PriceUAH,
		IsVisible:              true,
		HasTimeSelection:       req.HasTimeSelection,
		HasDurationSelection:   req.HasDurationSelection,
		HasMasterSelection:     req.HasMasterSelection,
		PriceDependsOnDuration: req.PriceDependsOnDuration,
	}
	if req.IsVisible != nil {
		svc.IsVisible = *req.IsVisible
	}

	created, err := h.service.CreateRangeService(r.Context(), svc)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, created)
}

// ListRangeServices возвращает услуги с фильтрами по каталогу и видимости.
func (h *Handler) ListRangeServices(w http.ResponseWriter, r *http.Request) {
	catalogID := r.URL.Query().Get("catalog_id")
	visibleOnly := r.URL.Query().Get("visible_only") == "true"

	services, err := h.service.ListRangeServices(r.Context(), catalogID, visibleOnly)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if services == nil {
		services = []model.Service{}
	}

	h.writeJSON(w, http.StatusOK, services)
}

// GetRangeService возвращает услугу по идентификатору.
func (h *Handler) GetRangeService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.service.GetRangeService(r.Context(), chi.URLParam(r, "serviceID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, svc)
}

// UpdateRangeService применяет частичное обновление услуги.
func (h *Handler) UpdateRangeService(w http.ResponseWriter, r *http.Request) {
	var upd model.ServiceUpdate
	if !h.decodeAndValidate(w, r, &upd) {
		return
	}

	svc, err := h.service.UpdateRangeService(r.Context(), chi.URLParam(r, "serviceID"), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, svc)
}

// DeleteRangeService удаляет услугу.
func (h *Handler) DeleteRangeService(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRangeService(r.Context(), chi.URLParam(r, "serviceID")); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Service deleted"})
}

// ListMastersForService возвращает активных инструкторов, закреплённых за услугой.
func (h *Handler) ListMastersForService(w http.ResponseWriter, r *http.Request) {
	masters, err := h.service.ListMastersByService(r.Context(), chi.URLParam(r, "serviceID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if masters == nil {
		masters = []model.Master{}
	}

	h.writeJSON(w, http.StatusOK, masters)
}
