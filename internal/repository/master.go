package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

const masterColumns = `id, full_name, position, description, is_active, service_ids, created_at`

func scanMaster(row pgx.Row) (*model.Master, error) {
	var m model.Master
	err := row.Scan(&m.ID, &m.FullName, &m.Position, &m.Description, &m.IsActive, &m.ServiceIDs, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	if m.ServiceIDs == nil {
		m.ServiceIDs = []string{}
	}
	return &m, nil
}

// CreateMaster сохраняет нового инструктора.
func (r *PostgresRepository) CreateMaster(ctx context.Context, m *model.Master) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO masters (`+masterColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.FullName, m.Position, m.Description, m.IsActive, m.ServiceIDs, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert master: %w", err)
	}
	return nil
}

// GetMaster возвращает инструктора по идентификатору.
func (r *PostgresRepository) GetMaster(ctx context.Context, id string) (*model.Master, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+masterColumns+` FROM masters WHERE id = $1`, id)

	m, err := scanMaster(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMasterNotFound
		}
		return nil, fmt.Errorf("get master: %w", err)
	}

	return m, nil
}

// ListMasters возвращает инструкторов, при необходимости только активных.
func (r *PostgresRepository) ListMasters(ctx context.Context, activeOnly bool) ([]model.Master, error) {
	query := `SELECT ` + masterColumns + ` FROM masters WHERE (NOT $1 OR is_active) ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("select masters: %w", err)
	}
	defer rows.Close()

	var res []model.Master
	for rows.Next() {
		m, err := scanMaster(rows)
		if err != nil {
			return nil, fmt.Errorf("scan master: %w", err)
		}
		res = append(res, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// ListMastersByService возвращает активных инструкторов, закреплённых за услугой.
func (r *PostgresRepository) ListMastersByService(ctx context.Context, serviceID string) ([]model.Master, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+masterColumns+` FROM masters WHERE is_active AND $1 = ANY(service_ids) ORDER BY created_at`,
		serviceID,
	)
	if err != nil {
		return nil, fmt.Errorf("select masters by service: %w", err)
	}
	defer rows.Close()

	var res []model.Master
	for rows.Next() {
		m, err := scanMaster(rows)
		if err != nil {
			return nil, fmt.Errorf("scan master: %w", err)
		}
		res = append(res, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return res, nil
}

// UpdateMaster перезаписывает данные инструктора.
func (r *PostgresRepository) UpdateMaster(ctx context.Context, m *model.Master) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE masters SET full_name = $2, position = $3, description = $4, is_active = $5, service_ids = $6
		 WHERE id = $1`,
		m.ID, m.FullName, m.Position, m.Description, m.IsActive, m.ServiceIDs,
	)
	if err != nil {
		return fmt.Errorf("update master: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrMasterNotFound
	}
	return nil
}

// DeleteMaster удаляет инструктора по идентификатору.
func (r *PostgresRepository) DeleteMaster(ctx context.Context, id string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM masters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete master: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrMasterNotFound
	}
	return nil
}

// LinkMasterService закрепляет услугу за инструктором. Повторное закрепление не ошибка.
func (r *PostgresRepository) LinkMasterService(ctx context.Context, masterID, serviceID string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE masters SET service_ids = array_append(service_ids, $2)
		 WHERE id = $1 AND NOT ($2 = ANY(service_ids))`,
		masterID, serviceID,
	)
	if err != nil {
		return fmt.Errorf("link master service: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Либо инструктора нет, либо связь уже существует.
		if _, err := r.GetMaster(ctx, masterID); err != nil {
			return err
		}
	}
	return nil
}

// UnlinkMasterService снимает услугу с инструктора. Отсутствие связи не ошибка.
func (r *PostgresRepository) UnlinkMasterService(ctx context.Context, masterID, serviceID string) error {
	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE masters SET service_ids = array_remove(service_ids, $2) WHERE id = $1`,
		masterID, serviceID,
	)
	if err != nil {
		return fmt.Errorf("unlink master service: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrMasterNotFound
	}
	return nil
}
