package repository

import (
	"context"
	"time"

	"github.com/subway-path-service/internal/domain"
)

// SessionRepository хранит сессии аутентифицированных пользователей
type SessionRepository interface {
	// Get возвращает пользователя по токену. (nil, nil) если сессия не найдена
	Get(ctx context.Context, token string) (*domain.LoginMember, error)

	// Create создает сессию и возвращает новый токен
	Create(ctx context.Context, member domain.LoginMember, ttl time.Duration) (string, error)

	// Delete удаляет сессию
	Delete(ctx context.Context, token string) error
}
