package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

// CreateCatalog сохраняет новый каталог.
func (r *PostgresRepository) CreateCatalog(ctx context.Context, c *model.Catalog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO catalogs (id, name, image, is_visible, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Image, c.IsVisible, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert catalog: %w", err)
	}
	return nil
}

// GetCatalog возвращает каталог по идентификатору.
func (r *PostgresRepository) GetCatalog(ctx context.Context, id string) (*model.Catalog, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, image, is_visible, created_at, updated_at FROM catalogs WHERE id = $1`,
		id,
	)

	var c model.Catalog
	err := row.Scan(&c.ID, &c.Name, &c.Image, &c.IsVisible, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCatalogNotFound
		}
		return nil, fmt.Errorf("get catalog: %w", err)
	}

	return &c, nil
}

// ListCatalogs возвращает каталоги, при необходимости только видимые.
func (r *PostgresRepository) ListCatalogs(ctx context.Context, visibleOnly bool) ([]model.Catalog, error) {
	query := `SELECT id, name, image, is_visible, created_at, updated_at FROM catalogs ORDER BY created_at`
	if visibleOnly {
		query = `SELECT id, name, image, is_visible, created_at, updated_at FROM catalogs WHERE is_visible ORDER BY created_at`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select catalogs: %w", err)
	}
	defer rows.Close()

	var res []model.Catalog
	for rows.Next() {
		var c model.Catalog
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.IsVisible, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog: %w", err)
		}
		res = append(res, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// UpdateCatalog перезаписывает каталог целиком.
func (r *PostgresRepository) UpdateCatalog(ctx context.Context, c *model.Catalog) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE catalogs SET name = $2, image = $3, is_visible = $4, updated_at = $5 WHERE id = $1`,
		c.ID, c.Name, c.Image, c.IsVisible, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update catalog: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCatalogNotFound
	}
	return nil
}

// DeleteCatalog удаляет каталог по идентификатору.
func (r *PostgresRepository) DeleteCatalog(ctx context.Context, id string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM catalogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCatalogNotFound
	}
	return nil
}

// CountCatalogs возвращает количество каталогов. Используется сидированием демо-данных.
func (r *PostgresRepository) CountCatalogs(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM catalogs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count catalogs: %w", err)
	}
	return count, nil
}
