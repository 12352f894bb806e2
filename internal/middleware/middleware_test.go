package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"find-my-stuff/internal/cache"
	"find-my-stuff/internal/model"
	"find-my-stuff/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newContext(sessionToken string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: sessionToken})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// registeredCache 模擬 session 已在快取中註冊
func registeredCache() *cache.FakeCache {
	return &cache.FakeCache{
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("1", nil)
		},
	}
}

func issueToken(t *testing.T, c *cache.FakeCache, user model.User) string {
	t.Helper()
	tok, err := service.IssueSession(context.Background(), c, user, time.Minute)
	require.NoError(t, err)
	return tok
}

func TestExtractClaims(t *testing.T) {
	t.Setenv("SESSION_SECRET", "testsecret")
	cch := registeredCache()

	// missing cookie
	ctx, _ := newContext("")
	_, err := extractClaims(ctx, cch)
	require.Error(t, err)

	// invalid token
	ctx, _ = newContext("invalid")
	_, err = extractClaims(ctx, cch)
	require.Error(t, err)

	// revoked session
	tok := issueToken(t, cch, model.User{ID: 1, Username: "a", Role: model.RoleUser})
	revoked := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
	}
	ctx, _ = newContext(tok)
	_, err = extractClaims(ctx, revoked)
	require.Error(t, err)

	// valid session
	ctx, _ = newContext(tok)
	claims, err := extractClaims(ctx, cch)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.Equal(t, "a", claims.Username)
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret")
	cch := registeredCache()
	tok := issueToken(t, cch, model.User{ID: 2, Username: "b", Role: model.RoleUser})

	// success path
	ctx, rec := newContext(tok)
	called := false
	handler := RequireAuth(cch)(func(c echo.Context) error {
		called = true
		cl, ok := ClaimsFromContext(c)
		require.True(t, ok)
		require.Equal(t, 2, cl.UserID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing cookie
	ctx, _ = newContext("")
	called = false
	err := RequireAuth(cch)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("SESSION_SECRET", "adminsecret")
	cch := registeredCache()
	adminTok := issueToken(t, cch, model.User{ID: 3, Username: "root", Role: model.RoleAdmin})
	userTok := issueToken(t, cch, model.User{ID: 4, Username: "c", Role: model.RoleUser})

	// admin ok
	ctx, rec := newContext(adminTok)
	called := false
	err := RequireAdmin(cch)(func(c echo.Context) error { called = true; return c.String(http.StatusOK, "admin") })(ctx)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// non-admin should fail
	ctx, _ = newContext(userTok)
	called = false
	err = RequireAdmin(cch)(func(c echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, httpErr.Code)
}
