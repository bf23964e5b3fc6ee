package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

// CreateLoyaltyRule сохраняет новое правило лояльности.
func (s *Service) CreateLoyaltyRule(ctx context.Context, rule *model.LoyaltyRule) (*model.LoyaltyRule, error) {
	rule.ID = uuid.NewString()
	if err := s.repo.CreateLoyaltyRule(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// ListLoyaltyRules возвращает правила лояльности по возрастанию порога.
func (s *Service) ListLoyaltyRules(ctx context.Context) ([]model.LoyaltyRule, error) {
	return s.repo.ListLoyaltyRules(ctx)
}

// UpdateLoyaltyRule перезаписывает правило лояльности.
func (s *Service) UpdateLoyaltyRule(ctx context.Context, id string, rule *model.LoyaltyRule) (*model.LoyaltyRule, error) {
	rule.ID = id
	if err := s.repo.UpdateLoyaltyRule(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// DeleteLoyaltyRule удаляет правило лояльности.
func (s *Service) DeleteLoyaltyRule(ctx context.Context, id string) error {
	return s.repo.DeleteLoyaltyRule(ctx, id)
}
