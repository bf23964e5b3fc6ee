package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

// GetSettings возвращает единственную запись настроек.
func (r *PostgresRepository) GetSettings(ctx context.Context) (*model.Settings, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT telegram_bot_token, telegram_chat_id, default_language,
		 admin_phone1, admin_phone2, admin_phone3
		 FROM settings WHERE id`,
	)

	var s model.Settings
	err := row.Scan(&s.TelegramBotToken, &s.TelegramChatID, &s.DefaultLanguage,
		&s.AdminPhone1, &s.AdminPhone2, &s.AdminPhone3)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &s, nil
}

// SaveSettings записывает настройки, создавая строку при первом сохранении.
func (r *PostgresRepository) SaveSettings(ctx context.Context, s *model.Settings) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO settings (id, telegram_bot_token, telegram_chat_id, default_language,
		 admin_phone1, admin_phone2, admin_phone3)
		 VALUES (TRUE, $1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		 telegram_bot_token = EXCLUDED.telegram_bot_token,
		 telegram_chat_id = EXCLUDED.telegram_chat_id,
		 default_language = EXCLUDED.default_language,
		 admin_phone1 = EXCLUDED.admin_phone1,
		 admin_phone2 = EXCLUDED.admin_phone2,
		 admin_phone3 = EXCLUDED.admin_phone3`,
		s.TelegramBotToken, s.TelegramChatID, s.DefaultLanguage,
		s.AdminPhone1, s.AdminPhone2, s.AdminPhone3,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
