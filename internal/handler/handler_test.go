package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/okhrimenko/rangemart-system/internal/model"
	"github.com/okhrimenko/rangemart-system/internal/repository"
)

type stubService struct {
	catalogResp  *model.Catalog
	catalogsResp []model.Catalog
	catalogErr   error

	productResp  *model.Product
	productsResp []model.Product
	productErr   error

	serviceResp  *model.Service
	servicesResp []model.Service
	serviceErr   error

	masterResp  *model.Master
	mastersResp []model.Master
	masterErr   error

	userResp  *model.User
	usersResp []model.User
	userErr   error
	isAdmin   bool

	cartResp *model.Cart
	cartErr  error

	orderResp  *model.Order
	ordersResp []model.Order
	orderErr   error

	ruleResp  *model.LoyaltyRule
	rulesResp []model.LoyaltyRule
	ruleErr   error

	settingsResp   *model.Settings
	settingsErr    error
	hasAdminPhones bool

	seedCreated bool
	seedErr     error

	addedItem model.CartItem
}

func (s *stubService) CreateCatalog(ctx context.Context, c *model.Catalog) (*model.Catalog, error) {
	if s.catalogErr != nil {
		return nil, s.catalogErr
	}
	return c, nil
}

func (s *stubService) GetCatalog(ctx context.Context, id string) (*model.Catalog, error) {
	return s.catalogResp, s.catalogErr
}

func (s *stubService) ListCatalogs(ctx context.Context, visibleOnly bool) ([]model.Catalog, error) {
	return s.catalogsResp, s.catalogErr
}

func (s *stubService) UpdateCatalog(ctx context.Context, id string, upd model.CatalogUpdate) (*model.Catalog, error) {
	return s.catalogResp, s.catalogErr
}

func (s *stubService) DeleteCatalog(ctx context.Context, id string) error {
	return s.catalogErr
}

func (s *stubService) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.productErr != nil {
		return nil, s.productErr
	}
	return p, nil
}

func (s *stubService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.productResp, s.productErr
}

func (s *stubService) ListProducts(ctx context.Context, catalogID string, visibleOnly bool) ([]model.Product, error) {
	return s.productsResp, s.productErr
}

func (s *stubService) UpdateProduct(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error) {
	return s.productResp, s.productErr
}

func (s *stubService) DeleteProduct(ctx context.Context, id string) error {
	return s.productErr
}

func (s *stubService) CreateRangeService(ctx context.Context, svc *model.Service) (*model.Service, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	return svc, nil
}

func (s *stubService) GetRangeService(ctx context.Context, id string) (*model.Service, error) {
	return s.serviceResp, s.serviceErr
}

func (s *stubService) ListRangeServices(ctx context.Context, catalogID string, visibleOnly bool) ([]model.Service, error) {
	return s.servicesResp, s.serviceErr
}

func (s *stubService) UpdateRangeService(ctx context.Context, id string, upd model.ServiceUpdate) (*model.Service, error) {
	return s.serviceResp, s.serviceErr
}

func (s *stubService) DeleteRangeService(ctx context.Context, id string) error {
	return s.serviceErr
}

func (s *stubService) CreateMaster(ctx context.Context, m *model.Master) (*model.Master, error) {
	if s.masterErr != nil {
		return nil, s.masterErr
	}
	return m, nil
}

func (s *stubService) GetMaster(ctx context.Context, id string) (*model.Master, error) {
	return s.masterResp, s.masterErr
}

func (s *stubService) ListMasters(ctx context.Context, activeOnly bool) ([]model.Master, error) {
	return s.mastersResp, s.masterErr
}

func (s *stubService) ListMastersByService(ctx context.Context, serviceID string) ([]model.Master, error) {
	return s.mastersResp, s.masterErr
}

func (s *stubService) UpdateMaster(ctx context.Context, id string, upd model.MasterUpdate) (*model.Master, error) {
	return s.masterResp, s.masterErr
}

func (s *stubService) DeleteMaster(ctx context.Context, id string) error {
	return s.masterErr
}

func (s *stubService) LinkMasterService(ctx context.Context, masterID, serviceID string) error {
	return s.masterErr
}

func (s *stubService) UnlinkMasterService(ctx context.Context, masterID, serviceID string) error {
	return s.masterErr
}

func (s *stubService) LoginOrRegister(ctx context.Context, phone, fullName string) (*model.User, error) {
	return s.userResp, s.userErr
}

func (s *stubService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.userResp, s.userErr
}

func (s *stubService) GetUserByPhone(ctx context.Context, phone string) (*model.User, error) {
	return s.userResp, s.userErr
}

func (s *stubService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.usersResp, s.userErr
}

func (s *stubService) IsAdmin(ctx context.Context, phone string) (bool, error) {
	return s.isAdmin, s.userErr
}

func (s *stubService) GetCart(ctx context.Context, userID string) (*model.Cart, error) {
	return s.cartResp, s.cartErr
}

func (s *stubService) AddCartItem(ctx context.Context, userID string, item model.CartItem) (*model.Cart, error) {
	s.addedItem = item
	return s.cartResp, s.cartErr
}

func (s *stubService) SetCartItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*model.Cart, error) {
	return s.cartResp, s.cartErr
}

func (s *stubService) RemoveCartItem(ctx context.Context, userID, itemID string) (*model.Cart, error) {
	return s.cartResp, s.cartErr
}

func (s *stubService) ClearCart(ctx context.Context, userID string) (*model.Cart, error) {
	return s.cartResp, s.cartErr
}

func (s *stubService) CreateOrder(ctx context.Context, userID string, items []model.OrderItem, totalAmount, discountPercent float64) (*model.Order, error) {
	return s.orderResp, s.orderErr
}

func (s *stubService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return s.orderResp, s.orderErr
}

func (s *stubService) GetOrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.ordersResp, s.orderErr
}

func (s *stubService) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return s.orderErr
}

func (s *stubService) CreateLoyaltyRule(ctx context.Context, rule *model.LoyaltyRule) (*model.LoyaltyRule, error) {
	if s.ruleErr != nil {
		return nil, s.ruleErr
	}
	return rule, nil
}

func (s *stubService) ListLoyaltyRules(ctx context.Context) ([]model.LoyaltyRule, error) {
	return s.rulesResp, s.ruleErr
}

func (s *stubService) UpdateLoyaltyRule(ctx context.Context, id string, rule *model.LoyaltyRule) (*model.LoyaltyRule, error) {
	return s.ruleResp, s.ruleErr
}

func (s *stubService) DeleteLoyaltyRule(ctx context.Context, id string) error {
	return s.ruleErr
}

func (s *stubService) Settings(ctx context.Context) (*model.Settings, error) {
	return s.settingsResp, s.settingsErr
}

func (s *stubService) UpdateSettings(ctx context.Context, upd model.SettingsUpdate) (*model.Settings, error) {
	return s.settingsResp, s.settingsErr
}

func (s *stubService) HasAdminPhones(ctx context.Context) (bool, error) {
	return s.hasAdminPhones, s.settingsErr
}

func (s *stubService) SeedDemoData(ctx context.Context) (bool, error) {
	return s.seedCreated, s.seedErr
}

func newTestHandler(t *testing.T, svc Service) *Handler {
	t.Helper()

	logger, err := zap.NewDevelopment()
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	return NewHandler(svc, logger)
}

func doRequest(t *testing.T, h *Handler, method, target string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()

	h.SetupRouter().ServeHTTP(rec, req)
	return rec.Result()
}

func TestRoot(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	res := doRequest(t, h, http.MethodGet, "/api/", nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var resp rootResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "Shooting Range API" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestLogin_Success(t *testing.T) {
	svc := &stubService{
		userResp: &model.User{
			ID:       "u-1",
			Phone:    "+380501234567",
			FullName: "Іван Петренко",
		},
	}
	h := newTestHandler(t, svc)

	res := doRequest(t, h, http.MethodPost, "/api/users/login", map[string]string{
		"phone":     "+380501234567",
		"full_name": "Іван Петренко",
	})
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var u model.User
	if err := json.NewDecoder(res.Body).Decode(&u); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if u.Phone != "+380501234567" {
		t.Fatalf("phone = %q", u.Phone)
	}
}

func TestLogin_MissingPhone(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	res := doRequest(t, h, http.MethodPost, "/api/users/login", map[string]string{
		"full_name": "Іван Петренко",
	})
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadRequest)
	}
}

func TestGetCatalog_NotFound(t *testing.T) {
	svc := &stubService{
		catalogErr: repository.ErrCatalogNotFound,
	}
	h := newTestHandler(t, svc)

	res := doRequest(t, h, http.MethodGet, "/api/catalogs/missing", nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusNotFound)
	}
}

func TestCreateCatalog_DefaultVisible(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	res := doRequest(t, h, http.MethodPost, "/api/catalogs/", map[string]string{
		"name": "Зброя",
	})
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var c model.Catalog
	if err := json.NewDecoder(res.Body).Decode(&c); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !c.IsVisible {
		t.Fatal("catalog must be visible by default")
	}
}

func TestCreateLoyaltyRule_ThresholdConflict(t *testing.T) {
	svc := &stubService{
		ruleErr: repository.ErrRuleThresholdExists,
	}
	h := newTestHandler(t, svc)

	res := doRequest(t, h, http.MethodPost, "/api/loyalty-rules/", map[string]any{
		"min_total_amount": 5000,
		"bonus_points":     50,
		"discount_percent": 3,
	})
	defer res.Body.Close()

	if res.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusConflict)
	}
}

func TestListOrders_RequiresUserID(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	res := doRequest(t, h, http.MethodGet, "/api/orders/", nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadRequest)
	}
}

func TestListOrders_EmptyListIsJSONArray(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	res := doRequest(t, h, http.MethodGet, "/api/orders/?user_id=u-1", nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Fatalf("body = %q, want []", got)
	}
}

func TestAddCartItem_DefaultQuantity(t *testing.T) {
	svc := &stubService{
		cartResp: &model.Cart{ID: "c-1", UserID: "u-1", Items: []model.CartItem{}},
	}
	h := newTestHandler(t, svc)

	res := doRequest(t, h, http.MethodPost, "/api/cart/u-1/items", map[string]any{
		"type":    "product",
		"item_id": "p-1",
		"name":    "Мішень картонна",
		"price":   25,
	})
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	if svc.addedItem.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", svc.addedItem.Quantity)
	}
}

func TestAddCartItem_InvalidType(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	res := doRequest(t, h, http.MethodPost, "/api/cart/u-1/items", map[string]any{
		"type":    "subscription",
		"item_id": "p-1",
		"name":    "Мішень картонна",
		"price":   25,
	})
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadRequest)
	}
}

func TestSetCartItemQuantity_BadQuery(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	res := doRequest(t, h, http.MethodPut, "/api/cart/u-1/items/i-1?quantity=abc", nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadRequest)
	}
}

func TestGetUserCard_PNG(t *testing.T) {
	svc := &stubService{
		userResp: &model.User{
			ID:    "u-1",
			QRMD5: "0123456789abcdef0123456789abcdef",
		},
	}
	h := newTestHandler(t, svc)

	res := doRequest(t, h, http.MethodGet, "/api/users/u-1/card", nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	if ct := res.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content-type = %q, want image/png", ct)
	}
}

func TestCheckAdmin_RequiresPhone(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	res := doRequest(t, h, http.MethodPost, "/api/users/check-admin", nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadRequest)
	}
}

func TestCheckAdmin_Response(t *testing.T) {
	svc := &stubService{isAdmin: true}
	h := newTestHandler(t, svc)

	res := doRequest(t, h, http.MethodPost, "/api/users/check-admin?phone=%2B380501234567", nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var resp map[string]bool
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp["is_admin"] {
		t.Fatal("is_admin = false, want true")
	}
}

func TestUpdateOrderStatus_RequiresStatus(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	res := doRequest(t, h, http.MethodPut, "/api/orders/o-1/status", nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadRequest)
	}
}

func TestHasAdminPhones(t *testing.T) {
	svc := &stubService{hasAdminPhones: true}
	h := newTestHandler(t, svc)

	res := doRequest(t, h, http.MethodGet, "/api/settings/has-admin-phones", nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var resp map[string]bool
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp["has_admin_phones"] {
		t.Fatal("has_admin_phones = false, want true")
	}
}

func TestSeed_AlreadyExists(t *testing.T) {
	svc := &stubService{seedCreated: false}
	h := newTestHandler(t, svc)

	res := doRequest(t, h, http.MethodPost, "/api/seed", nil)
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var resp messageResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "Demo data already exists" {
		t.Fatalf("message = %q", resp.Message)
	}
}
