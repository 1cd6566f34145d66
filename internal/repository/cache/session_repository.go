package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/subway-path-service/internal/domain"
	"github.com/subway-path-service/internal/domain/repository"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

type sessionRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewSessionRepository(redis *Redis) repository.SessionRepository {
	return &sessionRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (r *sessionRepository) Get(ctx context.Context, token string) (*domain.LoginMember, error) {
	data, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // unknown or expired session
	}
	if err != nil {
		r.logger.Error("Failed to get session", zap.Error(err))
		return nil, fmt.Errorf("session get error: %w", err)
	}

	var member domain.LoginMember
	if err := json.Unmarshal(data, &member); err != nil {
		r.logger.Error("Failed to unmarshal session", zap.Error(err))
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &member, nil
}

func (r *sessionRepository) Create(ctx context.Context, member domain.LoginMember, ttl time.Duration) (string, error) {
	data, err := json.Marshal(member)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	token := uuid.NewString()
	if err := r.client.Set(ctx, sessionKey(token), data, ttl).Err(); err != nil {
		r.logger.Error("Failed to create session", zap.Int64("member_id", member.ID), zap.Error(err))
		return "", fmt.Errorf("session set error: %w", err)
	}

	r.logger.Debug("Session created", zap.Int64("member_id", member.ID), zap.Duration("ttl", ttl))
	return token, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		r.logger.Error("Failed to delete session", zap.Error(err))
		return fmt.Errorf("session delete error: %w", err)
	}
	return nil
}
