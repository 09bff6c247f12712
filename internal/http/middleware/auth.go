package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

// is returned when email/password don't match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// uses bcrypt to hash a plaintext password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// compares a bcrypt hash with the plaintext.
func CheckPassword(hash, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// retrieves *model.Account from Gin context (after JWTMiddleware has run).
func GetCurrentAccount(c *gin.Context) (*model.Account, bool) {
	a, exists := c.Get("currentAccount")
	if !exists {
		return nil, false
	}
	account, ok := a.(*model.Account)
	return account, ok
}
