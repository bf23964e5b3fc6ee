package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okhrimenko/rangemart-system/internal/model"
	"github.com/okhrimenko/rangemart-system/internal/repository"
)

// LoginOrRegister возвращает клиента по телефону, регистрируя его при первом входе.
// Для существующего клиента переданное имя игнорируется, запись не меняется.
func (s *Service) LoginOrRegister(ctx context.Context, phone, fullName string) (*model.User, error) {
	existing, err := s.repo.GetUserByPhone(ctx, phone)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user := &model.User{
		ID:               uuid.NewString(),
		Phone:            phone,
		FullName:         fullName,
		RegistrationDate: time.Now().UTC(),
	}
	user.QRMD5 = cardHash(user.Phone, user.FullName, user.RegistrationDate)

	if err := s.repo.CreateUser(ctx, user); err != nil {
		// Два одновременных первых входа: запись уже создана конкурентом.
		if errors.Is(err, repository.ErrUserExists) {
			return s.repo.GetUserByPhone(ctx, phone)
		}
		return nil, err
	}

	return user, nil
}

// cardHash вычисляет содержимое QR-кода дисконтной карты. Хэш фиксируется
// при регистрации и не пересчитывается при смене имени клиента.
func cardHash(phone, fullName string, registrationDate time.Time) string {
	payload := fmt.Sprintf("%s;%s;%s", phone, fullName, registrationDate.Format(time.RFC3339Nano))
	sum := md5.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// GetUser возвращает клиента по идентификатору.
func (s *Service) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.repo.GetUser(ctx, id)
}

// GetUserByPhone возвращает клиента по номеру телефона.
func (s *Service) GetUserByPhone(ctx context.Context, phone string) (*model.User, error) {
	return s.repo.GetUserByPhone(ctx, phone)
}

// ListUsers возвращает всех клиентов.
func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}
