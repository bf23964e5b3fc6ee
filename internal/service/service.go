// Package service реализует бизнес-логику сервиса rangemart.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/okhrimenko/rangemart-system/internal/model"
	"github.com/okhrimenko/rangemart-system/internal/repository"
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error

	CreateCatalog(ctx context.Context, c *model.Catalog) error
	GetCatalog(ctx context.Context, id string) (*model.Catalog, error)
	ListCatalogs(ctx context.Context, visibleOnly bool) ([]model.Catalog, error)
	UpdateCatalog(ctx context.Context, c *model.Catalog) error
	DeleteCatalog(ctx context.Context, id string) error
	CountCatalogs(ctx context.Context) (int64, error)

	CreateProduct(ctx context.Context, p *model.Product) error
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, catalogID string, visibleOnly bool) ([]model.Product, error)
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id string) error

	CreateService(ctx context.Context, s *model.Service) error
	GetService(ctx context.Context, id string) (*model.Service, error)
	ListServices(ctx context.Context, catalogID string, visibleOnly bool) ([]model.Service, error)
	UpdateService(ctx context.Context, s *model.Service) error
	DeleteService(ctx context.Context, id string) error

	CreateMaster(ctx context.Context, m *model.Master) error
	GetMaster(ctx context.Context, id string) (*model.Master, error)
	ListMasters(ctx context.Context, activeOnly bool) ([]model.Master, error)
	ListMastersByService(ctx context.Context, serviceID string) ([]model.Master, error)
	UpdateMaster(ctx context.Context, m *model.Master) error
	DeleteMaster(ctx context.Context, id string) error
	LinkMasterService(ctx context.Context, masterID, serviceID string) error
	UnlinkMasterService(ctx context.Context, masterID, serviceID string) error

	CreateUser(ctx context.Context, u *model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)

	GetOrCreateCart(ctx context.Context, userID string) (*model.Cart, error)
	AddCartItem(ctx context.Context, userID string, item model.CartItem) (*model.Cart, error)
	SetCartItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*model.Cart, error)
	RemoveCartItem(ctx context.Context, userID, itemID string) (*model.Cart, error)
	ClearCart(ctx context.Context, userID string) (*model.Cart, error)

	CreateOrder(ctx context.Context, o *model.Order, bonusPoints int, newDiscount *float64) error
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	GetOrdersByUser(ctx context.Context, userID string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error

	CreateLoyaltyRule(ctx context.Context, rule *model.LoyaltyRule) error
	ListLoyaltyRules(ctx context.Context) ([]model.LoyaltyRule, error)
	UpdateLoyaltyRule(ctx context.Context, rule *model.LoyaltyRule) error
	DeleteLoyaltyRule(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (*model.Settings, error)
	SaveSettings(ctx context.Context, s *model.Settings) error
}

// Notifier описывает контракт доставки уведомлений о заказах.
type Notifier interface {
	SendOrderNotification(ctx context.Context, botToken, chatID string, order *model.Order, user *model.User) error
}

// Service содержит бизнес-логику сервиса rangemart.
type Service struct {
	repo     Repository
	notifier Notifier
	logger   *zap.Logger
}

// NewService создаёт новый сервис с указанным репозиторием и нотификатором.
func NewService(repo Repository, notifier Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// Settings возвращает настройки сервиса, создавая запись с настройками
// по умолчанию при первом обращении.
func (s *Service) Settings(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, err
	}

	defaults := model.DefaultSettings()
	if err := s.repo.SaveSettings(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

// UpdateSettings применяет частичное обновление настроек.
func (s *Service) UpdateSettings(ctx context.Context, upd model.SettingsUpdate) (*model.Settings, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}

	if upd.TelegramBotToken != nil {
		settings.TelegramBotToken = *upd.TelegramBotToken
	}
	if upd.TelegramChatID != nil {
		settings.TelegramChatID = *upd.TelegramChatID
	}
	if upd.DefaultLanguage != nil {
		settings.DefaultLanguage = *upd.DefaultLanguage
	}
	if upd.AdminPhone1 != nil {
		settings.AdminPhone1 = *upd.AdminPhone1
	}
	if upd.AdminPhone2 != nil {
		settings.AdminPhone2 = *upd.AdminPhone2
	}
	if upd.AdminPhone3 != nil {
		settings.AdminPhone3 = *upd.AdminPhone3
	}

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// HasAdminPhones сообщает, настроен ли хотя бы один телефон администратора.
func (s *Service) HasAdminPhones(ctx context.Context) (bool, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return false, err
	}
	return len(settings.AdminPhones()) > 0, nil
}

// IsAdmin проверяет, принадлежит ли телефон администратору.
func (s *Service) IsAdmin(ctx context.Context, phone string) (bool, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return false, err
	}
	return settings.IsAdmin(phone), nil
}
