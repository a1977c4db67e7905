package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

// The dashboard session lasts one day, matching the cookie lifetime of the
// old admin panel.
const sessionTTL = 24 * time.Hour

var jwtSecret = []byte("dev-secret-change-me")

// SetSecret installs the signing secret from config. Must be called before
// any token is issued or parsed.
func SetSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// GenerateToken issues a signed session token for a dashboard user.
func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a session token and returns it with claims.
func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}
