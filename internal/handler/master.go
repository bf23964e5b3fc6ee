package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

type masterCreateRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// CreateMaster создаёт нового инструктора.
func (h *Handler) CreateMaster(w http.ResponseWriter, r *http.Request) {
	var req masterCreateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	m := &model.Master{
		FullName:    req.FullName,
		Position:    req.Position,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	created, err := h.service.CreateMaster(r.Context(), m)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, created)
}

// ListMasters возвращает инструкторов, опционально только активных.
func (h *Handler) ListMasters(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	masters, err := h.service.ListMasters(r.Context(), activeOnly)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if masters == nil {
		masters = []model.Master{}
	}

	h.writeJSON(w, http.StatusOK, masters)
}

// GetMaster возвращает инструктора по идентификатору.
func (h *Handler) GetMaster(w http.ResponseWriter, r *http.Request) {
	master, err := h.service.GetMaster(r.Context(), chi.URLParam(r, "masterID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, master)
}

// UpdateMaster применяет частичное обновление инструктора.
func (h *Handler) UpdateMaster(w http.ResponseWriter, r *http.Request) {
	var upd model.MasterUpdate
	if !h.decodeAndValidate(w, r, &upd) {
		return
	}

	master, err := h.service.UpdateMaster(r.Context(), chi.URLParam(r, "masterID"), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, master)
}

// DeleteMaster удаляет инструктора.
func (h *Handler) DeleteMaster(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMaster(r.Context(), chi.URLParam(r, "masterID")); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Master deleted"})
}

// LinkMasterService закрепляет услугу за инструктором.
func (h *Handler) LinkMasterService(w http.ResponseWriter, r *http.Request) {
	masterID := chi.URLParam(r, "masterID")
	serviceID := chi.URLParam(r, "serviceID")

	if err := h.service.LinkMasterService(r.Context(), masterID, serviceID); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Service linked to master"})
}

// UnlinkMasterService снимает услугу с инструктора.
func (h *Handler) UnlinkMasterService(w http.ResponseWriter, r *http.Request) {
	masterID := chi.URLParam(r, "masterID")
	serviceID := chi.URLParam(r, "serviceID")

	if err := h.service.UnlinkMasterService(r.Context(), masterID, serviceID); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Service unlinked from master"})
}
