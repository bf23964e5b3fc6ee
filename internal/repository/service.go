package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

const serviceColumns = `id, catalog_id, name, description, price_uah, is_visible,
	has_time_selection, has_duration_selection, has_master_selection, price_depends_on_duration,
	created_at, updated_at`

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.CatalogID, &s.Name, &s.Description, &s.PriceUAH, &s.IsVisible,
		&s.HasTimeSelection, &s.HasDurationSelection, &s.HasMasterSelection, &s.PriceDependsOnDuration,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateService сохраняет новую услугу.
func (r *PostgresRepository) CreateService(ctx context.Context, s *model.Service) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO services (`+serviceColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.CatalogID, s.Name, s.Description, s.PriceUAH, s.IsVisible,
		s.HasTimeSelection, s.HasDurationSelection, s.HasMasterSelection, s.PriceDependsOnDuration,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetService возвращает услугу по идентификатору.
func (r *PostgresRepository) GetService(ctx context.Context, id string) (*model.Service, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)

	s, err := scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	return s, nil
}

// ListServices возвращает услуги с фильтрами по каталогу и видимости.
func (r *PostgresRepository) ListServices(ctx context.Context, catalogID string, visibleOnly bool) ([]model.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE ($1 = '' OR catalog_id = $1) AND (NOT $2 OR is_visible) ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, catalogID, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("select services: %w", err)
	}
	defer rows.Close()

	var res []model.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		res = append(res, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// UpdateService перезаписывает услугу целиком.
func (r *PostgresRepository) UpdateService(ctx context.Context, s *model.Service) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE services SET catalog_id = $2, name = $3, description = $4, price_uah = $5,
		 is_visible = $6, has_time_selection = $7, has_duration_selection = $8,
		 has_master_selection = $9, price_depends_on_duration = $10, updated_at = $11
		 WHERE id = $1`,
		s.ID, s.CatalogID, s.Name, s.Description, s.PriceUAH, s.IsVisible,
		s.HasTimeSelection, s.HasDurationSelection, s.HasMasterSelection, s.PriceDependsOnDuration,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// DeleteService удаляет услугу по идентификатору.
func (r *PostgresRepository) DeleteService(ctx context.Context, id string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}
