package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "game-api/pkg/errors"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secreto", time.Minute, time.Hour, zap.NewNop())

	access, refresh, err := svc.GenerateTokens(5, 2)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), claims.UserID)
	assert.Equal(t, uint64(2), claims.RoleID)
	assert.False(t, claims.IsRefreshToken)

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, claims.IsRefreshToken)

	assert.Equal(t, time.Minute, svc.GetAccessTokenTTL())
	assert.Equal(t, time.Hour, svc.GetRefreshTokenTTL())
}

func TestJWTService_Errors(t *testing.T) {
	expired := NewJWTService("secreto", -time.Minute, -time.Minute, zap.NewNop())
	access, _, err := expired.GenerateTokens(1, 1)
	require.NoError(t, err)
	_, err = expired.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)

	other := NewJWTService("otro", time.Minute, time.Minute, zap.NewNop())
	token, _, err := other.GenerateTokens(1, 1)
	require.NoError(t, err)
	_, err = NewJWTService("secreto", time.Minute, time.Minute, zap.NewNop()).ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = other.ValidateToken("no-es-un-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
