package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"find-my-stuff/internal/cache"
	"find-my-stuff/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestIssueSession(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	user := model.User{ID: 7, Username: "alice", Role: model.RoleUser}

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")
		_, err := IssueSession(ctx, &cache.FakeCache{}, user, time.Minute)
		require.Error(t, err)
	})

	t.Run("rand error", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		t.Setenv("SESSION_SECRET", "s")
		randRead = func([]byte) (int, error) { return 0, errors.New("rand") }
		_, err := IssueSession(ctx, &cache.FakeCache{}, user, time.Minute)
		require.Error(t, err)
	})

	t.Run("cache set error", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "s")
		c := &cache.FakeCache{
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("", errors.New("down"))
			},
		}
		_, err := IssueSession(ctx, c, user, time.Minute)
		require.Error(t, err)
	})

	t.Run("success and verify", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "s")
		var storedKey string
		c := &cache.FakeCache{
			SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
				storedKey = key
				require.Equal(t, time.Minute, ttl)
				return redis.NewStatusResult("OK", nil)
			},
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				require.Equal(t, storedKey, key)
				return redis.NewStringResult("7", nil)
			},
		}
		tok, err := IssueSession(ctx, c, user, time.Minute)
		require.NoError(t, err)

		claims, err := VerifySession(ctx, c, tok)
		require.NoError(t, err)
		require.Equal(t, 7, claims.UserID)
		require.Equal(t, "alice", claims.Username)
		require.Equal(t, model.RoleUser, claims.Role)
		require.False(t, claims.IsAdmin())
	})
}

func TestVerifySession(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")
		_, err := VerifySession(ctx, &cache.FakeCache{}, "tok")
		require.Error(t, err)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "s")
		_, err := VerifySession(ctx, &cache.FakeCache{}, "garbage")
		require.Error(t, err)
	})

	t.Run("revoked", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "s")
		issueCache := &cache.FakeCache{
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("OK", nil)
			},
		}
		tok, err := IssueSession(ctx, issueCache, model.User{ID: 1, Username: "u", Role: model.RoleAdmin}, time.Minute)
		require.NoError(t, err)

		revoked := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
		}
		_, err = VerifySession(ctx, revoked, tok)
		require.ErrorIs(t, err, ErrSessionRevoked)
	})
}

func TestDestroySession(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")
		require.Error(t, DestroySession(ctx, &cache.FakeCache{}, "tok"))
	})

	t.Run("unparsable token is a no-op", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "s")
		require.NoError(t, DestroySession(ctx, &cache.FakeCache{}, "garbage"))
	})

	t.Run("deletes the session key", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "s")
		issueCache := &cache.FakeCache{
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("OK", nil)
			},
		}
		tok, err := IssueSession(ctx, issueCache, model.User{ID: 2, Username: "b", Role: model.RoleUser}, time.Minute)
		require.NoError(t, err)

		deleted := false
		c := &cache.FakeCache{
			DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
				deleted = true
				require.Len(t, keys, 1)
				return redis.NewIntResult(1, nil)
			},
		}
		require.NoError(t, DestroySession(ctx, c, tok))
		require.True(t, deleted)
	})
}
