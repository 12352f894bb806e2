// File: internal/service/session.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"find-my-stuff/internal/cache"
	"find-my-stuff/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName 為瀏覽器端 session cookie 名稱
const SessionCookieName = "session"

const sessionKeyPrefix = "session:"

// ErrSessionRevoked 表示令牌簽章有效但 session 已被登出撤銷
var ErrSessionRevoked = errors.New("session revoked")

// 測試可覆寫下列變數
var (
	randRead        = rand.Read
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// SessionClaims 定義 session 令牌負載內容
type SessionClaims struct {
	UserID   int        `json:"user_id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin 回傳該 session 是否屬於管理員
func (c *SessionClaims) IsAdmin() bool {
	return c.Role == model.RoleAdmin
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// IssueSession 簽發攜帶使用者身分的 session 令牌，並將其 ID 註冊至快取
// 令牌以不透明 cookie 傳遞；登出時自快取移除即失效
func IssueSession(ctx context.Context, c cache.Cache, user model.User, ttl time.Duration) (string, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return "", fmt.Errorf("SESSION_SECRET not set")
	}

	buf := make([]byte, 16)
	if _, err := randRead(buf); err != nil {
		return "", err
	}
	sessionID := hex.EncodeToString(buf)

	now := timeNow()
	claims := SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	if err := c.Set(ctx, sessionKey(sessionID), user.ID, ttl).Err(); err != nil {
		return "", err
	}
	return signed, nil
}

// VerifySession 驗證令牌簽章並確認 session 尚未被撤銷
func VerifySession(ctx context.Context, c cache.Cache, tokenString string) (*SessionClaims, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if err := c.Get(ctx, sessionKey(claims.ID)).Err(); err != nil {
		return nil, ErrSessionRevoked
	}
	return claims, nil
}

// DestroySession 自快取移除 session 註冊，令牌即刻失效
// 令牌無法解析時視為已登出，不回報錯誤
func DestroySession(ctx context.Context, c cache.Cache, tokenString string) error {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return fmt.Errorf("SESSION_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil
	}
	return c.Del(ctx, sessionKey(claims.ID)).Err()
}
