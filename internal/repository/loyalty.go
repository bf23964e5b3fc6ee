package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

// CreateLoyaltyRule сохраняет новое правило лояльности.
// Порог min_total_amount уникален: совпадающие пороги отклоняются на записи,
// чтобы подбор ступени не зависел от порядка вставки правил.
func (r *PostgresRepository) CreateLoyaltyRule(ctx context.Context, rule *model.LoyaltyRule) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO loyalty_rules (id, min_total_amount, bonus_points, discount_percent)
		 VALUES ($1, $2, $3, $4)`,
		rule.ID, rule.MinTotalAmount, rule.BonusPoints, rule.DiscountPercent,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrRuleThresholdExists
		}
		return fmt.Errorf("insert loyalty rule: %w", err)
	}
	return nil
}

// ListLoyaltyRules возвращает правила лояльности по возрастанию порога.
func (r *PostgresRepository) ListLoyaltyRules(ctx context.Context) ([]model.LoyaltyRule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, min_total_amount, bonus_points, discount_percent
		 FROM loyalty_rules ORDER BY min_total_amount`,
	)
	if err != nil {
		return nil, fmt.Errorf("select loyalty rules: %w", err)
	}
	defer rows.Close()

	var res []model.LoyaltyRule
	for rows.Next() {
		var rule model.LoyaltyRule
		if err := rows.Scan(&rule.ID, &rule.MinTotalAmount, &rule.BonusPoints, &rule.DiscountPercent); err != nil {
			return nil, fmt.Errorf("scan loyalty rule: %w", err)
		}
		res = append(res, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// UpdateLoyaltyRule перезаписывает правило лояльности.
func (r *PostgresRepository) UpdateLoyaltyRule(ctx context.Context, rule *model.LoyaltyRule) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE loyalty_rules SET min_total_amount = $2, bonus_points = $3, discount_percent = $4
		 WHERE id = $1`,
		rule.ID, rule.MinTotalAmount, rule.BonusPoints, rule.DiscountPercent,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrRuleThresholdExists
		}
		return fmt.Errorf("update loyalty rule: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// DeleteLoyaltyRule удаляет правило лояльности.
func (r *PostgresRepository) DeleteLoyaltyRule(ctx context.Context, id string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM loyalty_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete loyalty rule: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrRuleNotFound
	}
	return nil
}
