package handler

import (
	"net/http"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

// GetSettings возвращает административные настройки сервиса.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Settings(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings частично обновляет настройки: затрагиваются только
// переданные поля.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var upd model.SettingsUpdate
	if !h.decodeAndValidate(w, r, &upd) {
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, settings)
}

// HasAdminPhones сообщает, задан ли хотя бы один телефон администратора.
func (h *Handler) HasAdminPhones(w http.ResponseWriter, r *http.Request) {
	has, err := h.service.HasAdminPhones(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]bool{"has_admin_phones": has})
}
