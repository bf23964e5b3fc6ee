package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/okhrimenko/rangemart-system/internal/loyalty"
	"github.com/okhrimenko/rangemart-system/internal/model"
)

const notifyTimeout = 10 * time.Second

// CreateOrder оформляет заказ: подбирает ступень лояльности по новой
// накопленной сумме клиента, сохраняет заказ вместе с обновлением накоплений
// и отправляет уведомление оператору. Ошибка доставки уведомления не влияет
// на результат оформления.
func (s *Service) CreateOrder(ctx context.Context, userID string, items []model.OrderItem, totalAmount, discountPercent float64) (*model.Order, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rules, err := s.repo.ListLoyaltyRules(ctx)
	if err != nil {
		return nil, err
	}

	newCumulative := user.TotalOrdersAmount + totalAmount
	award, qualified := loyalty.Resolve(rules, newCumulative)

	order := &model.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     totalAmount,
		DiscountPercent: discountPercent,
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	var newDiscount *float64
	if qualified {
		order.BonusPointsEarned = award.BonusPoints
		newDiscount = &award.DiscountPercent
	}

	if err := s.repo.CreateOrder(ctx, order, order.BonusPointsEarned, newDiscount); err != nil {
		return nil, err
	}

	s.dispatchOrderNotification(order, user)

	return order, nil
}

// dispatchOrderNotification отправляет уведомление о заказе в фоне,
// не блокируя и не отменяя оформление заказа.
func (s *Service) dispatchOrderNotification(order *model.Order, user *model.User) {
	if s.notifier == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		settings, err := s.Settings(ctx)
		if err != nil {
			s.logger.Error("load settings for notification", zap.Error(err), zap.String("order", order.ID))
			return
		}

		if settings.TelegramBotToken == "" || settings.TelegramChatID == "" {
			s.logger.Warn("telegram settings not configured", zap.String("order", order.ID))
			return
		}

		if err := s.notifier.SendOrderNotification(ctx, settings.TelegramBotToken, settings.TelegramChatID, order, user); err != nil {
			s.logger.Error("send order notification", zap.Error(err), zap.String("order", order.ID))
			return
		}

		s.logger.Info("order notification sent", zap.String("order", order.ID))
	}()
}

// GetOrder возвращает заказ по идентификатору.
func (s *Service) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

// GetOrdersByUser возвращает заказы клиента, новые первыми.
func (s *Service) GetOrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.repo.GetOrdersByUser(ctx, userID)
}

// UpdateOrderStatus обновляет статус заказа.
func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return s.repo.UpdateOrderStatus(ctx, id, status)
}
