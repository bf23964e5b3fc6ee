package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

const productColumns = `id, catalog_id, name, description, price_uah, discount_percent, quantity,
	weight, color, is_visible, main_image, additional_images, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.CatalogID, &p.Name, &p.Description, &p.PriceUAH, &p.DiscountPercent,
		&p.Quantity, &p.Weight, &p.Color, &p.IsVisible, &p.MainImage, &p.AdditionalImages,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.AdditionalImages == nil {
		p.AdditionalImages = []string{}
	}
	return &p, nil
}

// CreateProduct сохраняет новый товар.
func (r *PostgresRepository) CreateProduct(ctx context.Context, p *model.Product) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.CatalogID, p.Name, p.Description, p.PriceUAH, p.DiscountPercent, p.Quantity,
		p.Weight, p.Color, p.IsVisible, p.MainImage, p.AdditionalImages, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetProduct возвращает товар по идентификатору.
func (r *PostgresRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return p, nil
}

// ListProducts возвращает товары с фильтрами по каталогу и видимости.
func (r *PostgresRepository) ListProducts(ctx context.Context, catalogID string, visibleOnly bool) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ($1 = '' OR catalog_id = $1) AND (NOT $2 OR is_visible) ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, catalogID, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var res []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		res = append(res, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// UpdateProduct перезаписывает товар целиком.
func (r *PostgresRepository) UpdateProduct(ctx context.Context, p *model.Product) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE products SET catalog_id = $2, name = $3, description = $4, price_uah = $5,
		 discount_percent = $6, quantity = $7, weight = $8, color = $9, is_visible = $10,
		 main_image = $11, additional_images = $12, updated_at = $13
		 WHERE id = $1`,
		p.ID, p.CatalogID, p.Name, p.Description, p.PriceUAH, p.DiscountPercent, p.Quantity,
		p.Weight, p.Color, p.IsVisible, p.MainImage, p.AdditionalImages, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DeleteProduct удаляет товар по идентификатору.
func (r *PostgresRepository) DeleteProduct(ctx context.Context, id string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}
