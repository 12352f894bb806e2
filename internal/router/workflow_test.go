package router

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"find-my-stuff/internal/cache"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/model"
	"find-my-stuff/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type passValidator struct{}

func (passValidator) Validate(interface{}) error { return nil }

// scriptRow 實作 pgx.Row，以 fill 函式填入掃描目標
type scriptRow struct {
	scanErr error
	fill    func(dest ...any)
}

func (r *scriptRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if r.fill != nil {
		r.fill(dest...)
	}
	return nil
}

// sessionCache 以 map 模擬 Redis 的 session 註冊與查詢
func sessionCache() *cache.FakeCache {
	sessions := map[string]string{}
	return &cache.FakeCache{
		SetFn: func(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
			sessions[key] = fmt.Sprint(value)
			return redis.NewStatusResult("OK", nil)
		},
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			v, ok := sessions[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			for _, k := range keys {
				delete(sessions, k)
			}
			return redis.NewIntResult(1, nil)
		},
	}
}

type sentNotice struct {
	UserID  int
	Message string
}

// 驗證完整流程：註冊、提報物品、管理員核准、擁有者認領，
// 各步驟依序發出對應通知
func TestFullItemLifecycle(t *testing.T) {
	t.Setenv("SESSION_SECRET", "testsecret")

	users := []model.User{
		{ID: 1, Username: "root", Email: "root@example.com", Role: model.RoleAdmin},
	}
	findUser := func(match func(model.User) bool) *model.User {
		for i := range users {
			if match(users[i]) {
				return &users[i]
			}
		}
		return nil
	}
	fillUser := func(u model.User) func(dest ...any) {
		return func(dest ...any) {
			*dest[0].(*int) = u.ID
			*dest[1].(*string) = u.Username
			*dest[2].(*string) = u.Email
			*dest[3].(*string) = u.PasswordHash
			*dest[4].(*model.Role) = u.Role
		}
	}

	var item model.Item
	var notices []sentNotice

	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			switch {
			case strings.Contains(sql, "WHERE email"):
				u := findUser(func(u model.User) bool { return u.Email == args[0].(string) })
				if u == nil {
					return &scriptRow{scanErr: pgx.ErrNoRows}
				}
				return &scriptRow{fill: fillUser(*u)}
			case strings.Contains(sql, "WHERE username"):
				u := findUser(func(u model.User) bool { return u.Username == args[0].(string) })
				if u == nil {
					return &scriptRow{scanErr: pgx.ErrNoRows}
				}
				return &scriptRow{fill: fillUser(*u)}
			case strings.Contains(sql, "WHERE role"):
				return &scriptRow{fill: fillUser(users[0])}
			case strings.Contains(sql, "INSERT INTO users"):
				u := model.User{
					ID:           len(users) + 1,
					Username:     args[0].(string),
					Email:        args[1].(string),
					PasswordHash: args[2].(string),
					Role:         args[3].(model.Role),
				}
				users = append(users, u)
				return &scriptRow{fill: func(dest ...any) { *dest[0].(*int) = u.ID }}
			case strings.Contains(sql, "INSERT INTO items"):
				item = model.Item{
					ID:               7,
					Name:             args[0].(string),
					Description:      args[1].(string),
					Category:         args[2].(string),
					PictureURL:       args[4].(string),
					UserID:           args[5].(int),
					Status:           args[6].(string),
					ContactEmail:     args[7].(string),
					ContactPhone:     args[8].(string),
					IsApproved:       args[9].(bool),
					ItemLocation:     args[10].(string),
					UploaderLocation: args[11].(string),
				}
				if dl, ok := args[3].(*time.Time); ok {
					item.DateLost = dl
				}
				return &scriptRow{fill: func(dest ...any) { *dest[0].(*int) = item.ID }}
			case strings.Contains(sql, "FROM items WHERE id"):
				if args[0].(int) != item.ID {
					return &scriptRow{scanErr: pgx.ErrNoRows}
				}
				it := item
				return &scriptRow{fill: func(dest ...any) {
					*dest[0].(*int) = it.ID
					*dest[1].(*string) = it.Name
					*dest[2].(*string) = it.Description
					*dest[3].(*string) = it.Category
					*dest[4].(**time.Time) = it.DateLost
					*dest[5].(*string) = it.PictureURL
					*dest[6].(*int) = it.UserID
					*dest[7].(*string) = it.Status
					*dest[8].(*string) = it.ContactEmail
					*dest[9].(*string) = it.ContactPhone
					*dest[10].(*bool) = it.IsApproved
					*dest[11].(*string) = it.ItemLocation
					*dest[12].(*string) = it.UploaderLocation
				}}
			case strings.Contains(sql, "INSERT INTO notifications"):
				notices = append(notices, sentNotice{UserID: args[0].(int), Message: args[1].(string)})
				return &scriptRow{fill: func(dest ...any) {
					*dest[0].(*int) = len(notices)
					*dest[1].(*time.Time) = time.Now()
				}}
			}
			return &scriptRow{scanErr: fmt.Errorf("unexpected query: %s", sql)}
		},
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			switch {
			case strings.Contains(sql, "SET is_approved"):
				item.IsApproved = args[0].(bool)
			case strings.Contains(sql, "SET status"):
				item.Status = args[0].(string)
			default:
				return pgconn.CommandTag{}, fmt.Errorf("unexpected exec: %s", sql)
			}
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}

	cch := sessionCache()
	e := echo.New()
	e.Validator = passValidator{}
	Setup(e, db, cch, &service.FakeMailer{})

	do := func(method, target, form, token string) *httptest.ResponseRecorder {
		var req *http.Request
		if form != "" {
			req = httptest.NewRequest(method, target, strings.NewReader(form))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		} else {
			req = httptest.NewRequest(method, target, nil)
		}
		if token != "" {
			req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: token})
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	// 註冊新使用者
	rec := do(http.MethodPost, "/signup", "username=dana&email=dana@example.com&password=Secret123", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	dana := findUser(func(u model.User) bool { return u.Username == "dana" })
	require.NotNil(t, dana)

	danaTok, err := service.IssueSession(context.Background(), cch, *dana, time.Minute)
	require.NoError(t, err)
	adminTok, err := service.IssueSession(context.Background(), cch, users[0], time.Minute)
	require.NoError(t, err)

	// 提報物品，進入待審核狀態
	rec = do(http.MethodPost, "/add_item", "name=Blue+Umbrella&item_location=Library", danaTok)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.False(t, item.IsApproved)
	require.Equal(t, dana.ID, item.UserID)

	// 管理員核准
	rec = do(http.MethodPost, "/moderate_item/7/accept", "", adminTok)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, item.IsApproved)

	// 擁有者認領
	rec = do(http.MethodPost, "/resolve_item/7", "", danaTok)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, string(model.StatusClaimed), item.Status)

	require.Equal(t, []sentNotice{
		{UserID: 1, Message: "New user registered: dana (dana@example.com)"},
		{UserID: 1, Message: "New item 'Blue Umbrella' needs approval."},
		{UserID: dana.ID, Message: "Your item 'Blue Umbrella' was approved!"},
		{UserID: 1, Message: "Item 'Blue Umbrella' was claimed."},
	}, notices)
}
