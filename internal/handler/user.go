package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

type loginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
}

// Login возвращает клиента по телефону, регистрируя его при первом входе.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.service.LoginOrRegister(r.Context(), req.Phone, req.FullName)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

// ListUsers возвращает всех клиентов.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}

	h.writeJSON(w, http.StatusOK, users)
}

// GetUser возвращает клиента по идентификатору.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

// GetUserByPhone возвращает клиента по номеру телефона.
func (h *Handler) GetUserByPhone(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUserByPhone(r.Context(), chi.URLParam(r, "phone"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

// GetUserCard отдаёт QR-код дисконтной карты клиента в формате PNG.
func (h *Handler) GetUserCard(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	png, err := qrcode.Encode(user.QRMD5, qrcode.Medium, 256)
	if err != nil {
		h.logger.Error("encode qr code", zap.Error(err), zap.String("user", user.ID))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Error("write qr code", zap.Error(err))
	}
}

type isAdminResponse struct {
	IsAdmin bool `json:"is_admin"`
}

// CheckAdmin проверяет, принадлежит ли телефон администратору.
func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	isAdmin, err := h.service.IsAdmin(r.Context(), phone)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, isAdminResponse{IsAdmin: isAdmin})
}
