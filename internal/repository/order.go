package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o        model.Order
		rawItems []byte
	)
	err := row.Scan(&o.ID, &o.UserID, &rawItems, &o.TotalAmount, &o.DiscountPercent,
		&o.BonusPointsEarned, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawItems, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	return &o, nil
}

// CreateOrder сохраняет заказ и обновляет накопления клиента в одной транзакции:
// либо записываются и заказ, и счётчики клиента, либо ничего.
// newDiscount == nil означает, что подходящей ступени нет и скидка не меняется.
func (r *PostgresRepository) CreateOrder(ctx context.Context, o *model.Order, bonusPoints int, newDiscount *float64) error {
	rawItems, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO orders (id, user_id, items, total_amount, discount_percent, bonus_points_earned, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.UserID, rawItems, o.TotalAmount, o.DiscountPercent, o.BonusPointsEarned,
		string(o.Status), o.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	cmdTag, err := tx.Exec(ctx,
		`UPDATE users SET
		 total_orders_count = total_orders_count + 1,
		 total_orders_amount = total_orders_amount + $2,
		 bonus_points = bonus_points + $3,
		 discount_percent = COALESCE($4, discount_percent)
		 WHERE id = $1`,
		o.UserID, o.TotalAmount, bonusPoints, newDiscount,
	)
	if err != nil {
		return fmt.Errorf("update user totals: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetOrder возвращает заказ по идентификатору.
func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, user_id, items, total_amount, discount_percent, bonus_points_earned, status, created_at
		 FROM orders WHERE id = $1`,
		id,
	)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	return o, nil
}

// GetOrdersByUser возвращает заказы клиента, новые первыми.
func (r *PostgresRepository) GetOrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, items, total_amount, discount_percent, bonus_points_earned, status, created_at
		 FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var res []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// UpdateOrderStatus обновляет статус заказа.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}
