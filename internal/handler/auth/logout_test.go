package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"find-my-stuff/internal/cache"
	"find-my-stuff/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestLogoutHandler(t *testing.T) {
	e := echo.New()

	newLogoutCtx := func(token string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/logout", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: token})
		}
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("destroys the session and expires the cookie", func(t *testing.T) {
		t.Cleanup(restore)
		destroyed := false
		destroySession = func(_ context.Context, _ cache.Cache, token string) error {
			destroyed = true
			require.Equal(t, "tok", token)
			return nil
		}
		ctx, rec := newLogoutCtx("tok")
		require.NoError(t, LogoutHandler(nil)(ctx))
		require.True(t, destroyed)
		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, service.SessionCookieName, cookies[0].Name)
		require.Empty(t, cookies[0].Value)
		require.Negative(t, cookies[0].MaxAge)
	})

	t.Run("succeeds without a cookie", func(t *testing.T) {
		t.Cleanup(restore)
		destroySession = func(context.Context, cache.Cache, string) error {
			t.Fatal("destroy must not be called without a cookie")
			return nil
		}
		ctx, rec := newLogoutCtx("")
		require.NoError(t, LogoutHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("succeeds even when revocation fails", func(t *testing.T) {
		t.Cleanup(restore)
		destroySession = func(context.Context, cache.Cache, string) error {
			return errors.New("cache down")
		}
		ctx, rec := newLogoutCtx("tok")
		require.NoError(t, LogoutHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
