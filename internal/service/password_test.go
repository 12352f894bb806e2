package service

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/gomail.v2"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	randInt = rand.Int
	randRead = rand.Read
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	dialAndSend = func(d *gomail.Dialer, m ...*gomail.Message) error { return d.DialAndSend(m...) }
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "wrong"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestValidatePassword(t *testing.T) {
	// 全部規則通過
	require.Empty(t, ValidatePassword("Abc12345"))

	// 全部規則違反
	require.Equal(t, []string{
		"Password must be a minimum of 8 characters.",
		"Password must contain at least 1 Uppercase letter.",
		"Password must contain at least 1 lowercase letter.",
		"Password must contain at least 1 number.",
	}, ValidatePassword(""))

	errs := ValidatePassword("abc")
	require.Len(t, errs, 3)
	require.Contains(t, errs, "Password must be a minimum of 8 characters.")
	require.Contains(t, errs, "Password must contain at least 1 Uppercase letter.")
	require.Contains(t, errs, "Password must contain at least 1 number.")

	// 單一規則違反
	require.Equal(t, []string{"Password must contain at least 1 number."}, ValidatePassword("Abcdefgh"))
	require.Equal(t, []string{"Password must contain at least 1 Uppercase letter."}, ValidatePassword("abc12345"))
	require.Equal(t, []string{"Password must contain at least 1 lowercase letter."}, ValidatePassword("ABC12345"))
	require.Equal(t, []string{"Password must be a minimum of 8 characters."}, ValidatePassword("Abc1234"))
}

func TestGenerateTempPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd, err := GenerateTempPassword(12)
	require.NoError(t, err)
	require.Len(t, pwd, 12)
	for _, r := range pwd {
		require.Contains(t, tempPasswordCharset, string(r))
	}

	randInt = func(_ io.Reader, _ *big.Int) (*big.Int, error) { return nil, errors.New("rand") }
	_, err = GenerateTempPassword(12)
	require.Error(t, err)
}
