// Package handler содержит HTTP-обработчики API сервиса rangemart.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okhrimenko/rangemart-system/internal/model"
	"github.com/okhrimenko/rangemart-system/internal/repository"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	CreateCatalog(ctx context.Context, c *model.Catalog) (*model.Catalog, error)
	GetCatalog(ctx context.Context, id string) (*model.Catalog, error)
	ListCatalogs(ctx context.Context, visibleOnly bool) ([]model.Catalog, error)
	UpdateCatalog(ctx context.Context, id string, upd model.CatalogUpdate) (*model.Catalog, error)
	DeleteCatalog(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, catalogID string, visibleOnly bool) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	CreateRangeService(ctx context.Context, svc *model.Service) (*model.Service, error)
	GetRangeService(ctx context.Context, id string) (*model.Service, error)
	ListRangeServices(ctx context.Context, catalogID string, visibleOnly bool) ([]model.Service, error)
	UpdateRangeService(ctx context.Context, id string, upd model.ServiceUpdate) (*model.Service, error)
	DeleteRangeService(ctx context.Context, id string) error

	CreateMaster(ctx context.Context, m *model.Master) (*model.Master, error)
	GetMaster(ctx context.Context, id string) (*model.Master, error)
	ListMasters(ctx context.Context, activeOnly bool) ([]model.Master, error)
	ListMastersByService(ctx context.Context, serviceID string) ([]model.Master, error)
	UpdateMaster(ctx context.Context, id string, upd model.MasterUpdate) (*model.Master, error)
	DeleteMaster(ctx context.Context, id string) error
	LinkMasterService(ctx context.Context, masterID, serviceID string) error
	UnlinkMasterService(ctx context.Context, masterID, serviceID string) error

	LoginOrRegister(ctx context.Context, phone, fullName string) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	IsAdmin(ctx context.Context, phone string) (bool, error)

	GetCart(ctx context.Context, userID string) (*model.Cart, error)
	AddCartItem(ctx context.Context, userID string, item model.CartItem) (*model.Cart, error)
	SetCartItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*model.Cart, error)
	RemoveCartItem(ctx context.Context, userID, itemID string) (*model.Cart, error)
	ClearCart(ctx context.Context, userID string) (*model.Cart, error)

	CreateOrder(ctx context.Context, userID string, items []model.OrderItem, totalAmount, discountPercent float64) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	GetOrdersByUser(ctx context.Context, userID string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error

	CreateLoyaltyRule(ctx context.Context, rule *model.LoyaltyRule) (*model.LoyaltyRule, error)
	ListLoyaltyRules(ctx context.Context) ([]model.LoyaltyRule, error)
	UpdateLoyaltyRule(ctx context.Context, id string, rule *model.LoyaltyRule) (*model.LoyaltyRule, error)
	DeleteLoyaltyRule(ctx context.Context, id string) error

	Settings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, upd model.SettingsUpdate) (*model.Settings, error)
	HasAdminPhones(ctx context.Context) (bool, error)

	SeedDemoData(ctx context.Context) (bool, error)
}

// Handler реализует HTTP-обработчики API сервиса rangemart.
type Handler struct {
	service  Service
	logger   *zap.Logger
	validate *validator.Validate
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service:  s,
		logger:   logger,
		validate: validator.New(),
	}
}

// decodeAndValidate разбирает JSON-тело запроса и проверяет обязательные поля
// до выполнения каких-либо изменений.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

// respondError транслирует доменные ошибки в HTTP-статусы.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrCatalogNotFound),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrServiceNotFound),
		errors.Is(err, repository.ErrMasterNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrCartNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrRuleNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, repository.ErrRuleThresholdExists),
		errors.Is(err, repository.ErrUserExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("request failed", zap.Error(err), zap.String("path", r.URL.Path))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Root возвращает информацию об API.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, rootResponse{
		Message: "Shooting Range API",
		Version: "1.0",
	})
}

// Seed загружает демонстрационные данные.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	created, err := h.service.SeedDemoData(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	msg := "Demo data created successfully"
	if !created {
		msg = "Demo data already exists"
	}
	h.writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}
