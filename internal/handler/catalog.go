package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

type catalogCreateRequest struct {
	Name      string `json:"name" validate:"required"`
	Image     string `json:"image"`
	IsVisible *bool  `json:"is_visible"`
}

// CreateCatalog создаёт новый каталог.
func (h *Handler) CreateCatalog(w http.ResponseWriter, r *http.Request) {
	var req catalogCreateRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	c := &model.Catalog{
		Name:      req.Name,
		Image:     req.Image,
		IsVisible: true,
	}
	if req.IsVisible != nil {
		c.IsVisible = *req.IsVisible
	}

	created, err := h.service.CreateCatalog(r.Context(), c)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, created)
}

// ListCatalogs возвращает каталоги, опционально только видимые.
func (h *Handler) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	visibleOnly := r.URL.Query().Get("visible_only") == "true"

	catalogs, err := h.service.ListCatalogs(r.Context(), visibleOnly)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if catalogs == nil {
		catalogs = []model.Catalog{}
	}

	h.writeJSON(w, http.StatusOK, catalogs)
}

// GetCatalog возвращает каталог по идентификатору.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.GetCatalog(r.Context(), chi.URLParam(r, "catalogID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, catalog)
}

// UpdateCatalog применяет частичное обновление каталога.
func (h *Handler) UpdateCatalog(w http.ResponseWriter, r *http.Request) {
	var upd model.CatalogUpdate
	if !h.decodeAndValidate(w, r, &upd) {
		return
	}

	catalog, err := h.service.UpdateCatalog(r.Context(), chi.URLParam(r, "catalogID"), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, catalog)
}

// DeleteCatalog удаляет каталог.
func (h *Handler) DeleteCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCatalog(r.Context(), chi.URLParam(r, "catalogID")); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Catalog deleted"})
}
