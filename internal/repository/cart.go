package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

func scanCart(row pgx.Row) (*model.Cart, error) {
	var (
		c        model.Cart
		rawItems []byte
	)
	if err := row.Scan(&c.ID, &c.UserID, &rawItems, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawItems, &c.Items); err != nil {
		return nil, fmt.Errorf("unmarshal cart items: %w", err)
	}
	if c.Items == nil {
		c.Items = []model.CartItem{}
	}
	return &c, nil
}

// GetOrCreateCart возвращает корзину клиента, создавая пустую при первом обращении.
func (r *PostgresRepository) GetOrCreateCart(ctx context.Context, userID string) (*model.Cart, error) {
	cart, err := r.getCart(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}

	newCart := model.NewCart(userID)
	// При гонке двух первых обращений выигрывает уже вставленная корзина.
	_, err = r.pool.Exec(ctx,
		`INSERT INTO carts (id, user_id, items, updated_at) VALUES ($1, $2, '[]', $3)
		 ON CONFLICT (user_id) DO NOTHING`,
		newCart.ID, newCart.UserID, newCart.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert cart: %w", err)
	}

	return r.getCart(ctx, userID)
}

func (r *PostgresRepository) getCart(ctx context.Context, userID string) (*model.Cart, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, user_id, items, updated_at FROM carts WHERE user_id = $1`,
		userID,
	)

	cart, err := scanCart(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// mutateCart выполняет изменение корзины под блокировкой строки, сериализуя
// конкурентные изменения корзины одного клиента.
func (r *PostgresRepository) mutateCart(ctx context.Context, userID string, createIfMissing bool, mutate func(*model.Cart)) (*model.Cart, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`SELECT id, user_id, items, updated_at FROM carts WHERE user_id = $1 FOR UPDATE`,
		userID,
	)

	cart, err := scanCart(row)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("lock cart: %w", err)
		}
		if !createIfMissing {
			return nil, ErrCartNotFound
		}

		cart = model.NewCart(userID)
		if _, err := tx.Exec(ctx,
			`INSERT INTO carts (id, user_id, items, updated_at) VALUES ($1, $2, '[]', $3)`,
			cart.ID, cart.UserID, cart.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("insert cart: %w", err)
		}
	}

	mutate(cart)

	rawItems, err := json.Marshal(cart.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal cart items: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE carts SET items = $2, updated_at = $3 WHERE id = $1`,
		cart.ID, rawItems, cart.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("update cart: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return cart, nil
}

// AddCartItem добавляет позицию в корзину клиента, объединяя её с существующей
// позицией того же типа и товара.
func (r *PostgresRepository) AddCartItem(ctx context.Context, userID string, item model.CartItem) (*model.Cart, error) {
	return r.mutateCart(ctx, userID, true, func(c *model.Cart) {
		c.AddItem(item)
	})
}

// SetCartItemQuantity устанавливает количество позиции; ноль и меньше удаляет её.
func (r *PostgresRepository) SetCartItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*model.Cart, error) {
	return r.mutateCart(ctx, userID, false, func(c *model.Cart) {
		c.SetQuantity(itemID, quantity)
	})
}

// RemoveCartItem удаляет позицию из корзины клиента.
func (r *PostgresRepository) RemoveCartItem(ctx context.Context, userID, itemID string) (*model.Cart, error) {
	return r.mutateCart(ctx, userID, false, func(c *model.Cart) {
		c.RemoveItem(itemID)
	})
}

// ClearCart очищает корзину клиента, сохраняя её идентификатор.
func (r *PostgresRepository) ClearCart(ctx context.Context, userID string) (*model.Cart, error) {
	return r.mutateCart(ctx, userID, true, func(c *model.Cart) {
		c.Clear()
	})
}
