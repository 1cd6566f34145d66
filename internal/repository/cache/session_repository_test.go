package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/subway-path-service/internal/domain"
	"github.com/subway-path-service/internal/domain/repository"
	"github.com/subway-path-service/internal/repository/cache"
)

func setupSessionRepository(t *testing.T) (repository.SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewSessionRepository(cache.NewRedisFromClient(client, zap.NewNop())), mr
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	repo, mr := setupSessionRepository(t)
	ctx := context.Background()

	token, err := repo.Create(ctx, domain.LoginMember{ID: 7, Age: 15}, time.Hour)
	require.NoError(t, err)

	_, err = uuid.Parse(token)
	assert.NoError(t, err)
	assert.True(t, mr.Exists("session:"+token))

	member, err := repo.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, int64(7), member.ID)
	assert.Equal(t, 15, member.Age)
}

func TestSessionRepository_Missing(t *testing.T) {
	repo, _ := setupSessionRepository(t)

	member, err := repo.Get(context.Background(), uuid.NewString())

	assert.NoError(t, err)
	assert.Nil(t, member)
}

func TestSessionRepository_Expired(t *testing.T) {
	repo, mr := setupSessionRepository(t)
	ctx := context.Background()

	token, err := repo.Create(ctx, domain.LoginMember{ID: 1, Age: 30}, time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	member, err := repo.Get(ctx, token)
	assert.NoError(t, err)
	assert.Nil(t, member)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo, _ := setupSessionRepository(t)
	ctx := context.Background()

	token, err := repo.Create(ctx, domain.LoginMember{ID: 2, Age: 8}, time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, token))

	member, err := repo.Get(ctx, token)
	assert.NoError(t, err)
	assert.Nil(t, member)
}

func TestSessionRepository_CorruptPayload(t *testing.T) {
	repo, mr := setupSessionRepository(t)
	require.NoError(t, mr.Set("session:broken", "{not json"))

	member, err := repo.Get(context.Background(), "broken")

	assert.Error(t, err)
	assert.Nil(t, member)
}
