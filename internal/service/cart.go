package service

import (
	"context"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

// GetCart возвращает корзину клиента, создавая пустую при первом обращении.
func (s *Service) GetCart(ctx context.Context, userID string) (*model.Cart, error) {
	return s.repo.GetOrCreateCart(ctx, userID)
}

// AddCartItem добавляет позицию в корзину: совпадающая пара (type, item_id)
// увеличивает количество существующей позиции.
func (s *Service) AddCartItem(ctx context.Context, userID string, item model.CartItem) (*model.Cart, error) {
	return s.repo.AddCartItem(ctx, userID, item)
}

// SetCartItemQuantity устанавливает количество позиции; ноль и меньше удаляет её.
func (s *Service) SetCartItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*model.Cart, error) {
	return s.repo.SetCartItemQuantity(ctx, userID, itemID, quantity)
}

// RemoveCartItem удаляет позицию из корзины.
func (s *Service) RemoveCartItem(ctx context.Context, userID, itemID string) (*model.Cart, error) {
	return s.repo.RemoveCartItem(ctx, userID, itemID)
}

// ClearCart очищает корзину клиента.
func (s *Service) ClearCart(ctx context.Context, userID string) (*model.Cart, error) {
	return s.repo.ClearCart(ctx, userID)
}
