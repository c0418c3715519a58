package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/auth"
)

func TestJWTService(t *testing.T) {
	t.Run("round trips the subject", func(t *testing.T) {
		svc := auth.NewJWTService("secret", time.Hour)

		token, expiresAt, err := svc.GenerateToken(auth.AdminSubject)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		subject, err := svc.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, auth.AdminSubject, subject)
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		token, _, err := auth.NewJWTService("other", time.Hour).GenerateToken(auth.AdminSubject)
		require.NoError(t, err)

		_, err = auth.NewJWTService("secret", time.Hour).ValidateToken(token)

		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		svc := auth.NewJWTService("secret", -time.Minute)
		token, _, err := svc.GenerateToken(auth.AdminSubject)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects foreign issuer", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   auth.AdminSubject,
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = auth.NewJWTService("secret", time.Hour).ValidateToken(token)

		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := auth.NewJWTService("secret", time.Hour).ValidateToken("not-a-token")

		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
