// File: internal/service/password.go
package service

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// 測試可覆寫下列變數
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	randInt                      = rand.Int
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidatePassword 檢查密碼強度，回傳所有未通過的規則訊息
// 規則：至少 8 碼、至少 1 大寫、1 小寫、1 數字
func ValidatePassword(password string) []string {
	var errs []string
	if len(password) < 8 {
		errs = append(errs, "Password must be a minimum of 8 characters.")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		errs = append(errs, "Password must contain at least 1 Uppercase letter.")
	}
	if !hasLower {
		errs = append(errs, "Password must contain at least 1 lowercase letter.")
	}
	if !hasDigit {
		errs = append(errs, "Password must contain at least 1 number.")
	}
	return errs
}

const tempPasswordCharset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789"

// GenerateTempPassword 產生指定長度的隨機英數臨時密碼
func GenerateTempPassword(length int) (string, error) {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		nBig, err := randInt(rand.Reader, big.NewInt(int64(len(tempPasswordCharset))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(tempPasswordCharset[nBig.Int64()])
	}
	return sb.String(), nil
}
