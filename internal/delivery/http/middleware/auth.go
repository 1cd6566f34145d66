package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/subway-path-service/internal/domain"
	"github.com/subway-path-service/internal/domain/repository"
	"github.com/subway-path-service/internal/pkg/errors"
	"github.com/subway-path-service/internal/pkg/utils"
	"go.uber.org/zap"
)

const loginMemberKey = "login_member"

// OptionalAuth - определяет пользователя по Bearer токену, если он передан.
// Запрос без заголовка Authorization считается анонимным и пропускается дальше.
func OptionalAuth(sessions repository.SessionRepository, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		token, ok := bearerToken(header)
		if !ok {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		member, err := sessions.Get(c.UserContext(), token)
		if err != nil {
			logger.Error("Failed to load session", zap.String("request_id", RequestIDFrom(c)), zap.Error(err))
			return utils.SendError(c, errors.ErrCacheError)
		}
		if member == nil {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		c.Locals(loginMemberKey, member)
		return c.Next()
	}
}

// LoginMemberFrom возвращает аутентифицированного пользователя или nil
func LoginMemberFrom(c *fiber.Ctx) *domain.LoginMember {
	member, _ := c.Locals(loginMemberKey).(*domain.LoginMember)
	return member
}

// bearerToken извлекает токен сессии; токены выдаются как UUID
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if _, err := uuid.Parse(token); err != nil {
		return "", false
	}
	return token, true
}
