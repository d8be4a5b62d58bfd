package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrohub/internal/hub/adapters/services"
	domain "agrohub/internal/hub/domain/services"
)

const testSecret = "test-secret-key"

func TestJWTGenerate(t *testing.T) {
	ctx := context.Background()
	service := services.NewJWT(testSecret, 15*time.Minute)

	t.Run("issues a token bound to the user id", func(t *testing.T) {
		token, expiresAt, err := service.Generate(ctx, "alijoh1a2b3c4d")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)

		parsed, err := jwt.ParseWithClaims(token, &services.Claims{}, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		claims, ok := parsed.Claims.(*services.Claims)
		require.True(t, ok)
		assert.Equal(t, "alijoh1a2b3c4d", claims.UserID)
		assert.Equal(t, "alijoh1a2b3c4d", claims.Subject)
	})

	t.Run("fails with an empty secret key", func(t *testing.T) {
		empty := services.NewJWT("", 15*time.Minute)

		_, _, err := empty.Generate(ctx, "alijoh1a2b3c4d")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrGeneratingToken)
	})
}

func TestJWTValidate(t *testing.T) {
	ctx := context.Background()
	service := services.NewJWT(testSecret, 15*time.Minute)

	t.Run("round trip returns the user id", func(t *testing.T) {
		token, _, err := service.Generate(ctx, "alijoh1a2b3c4d")
		require.NoError(t, err)

		userID, err := service.Validate(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, "alijoh1a2b3c4d", userID)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := services.NewJWT("another-secret", 15*time.Minute)
		token, _, err := other.Generate(ctx, "alijoh1a2b3c4d")
		require.NoError(t, err)

		_, err = service.Validate(ctx, token)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := services.NewJWT(testSecret, -time.Minute)
		token, _, err := expired.Generate(ctx, "alijoh1a2b3c4d")
		require.NoError(t, err)

		_, err = service.Validate(ctx, token)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrExpiredToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.Validate(ctx, "not.a.token")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("rejects a token without a user id", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		token, err := raw.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = service.Validate(ctx, token)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}
