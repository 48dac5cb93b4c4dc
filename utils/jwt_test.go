package utils

import (
	"testing"
	"time"

	"qserve/config"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("u1", "provider", time.Hour)
	require.NoError(t, err)

	userID, role, err := ExtractClaims(token)
	require.NoError(t, err)
	require.Equal(t, "u1", userID)
	require.Equal(t, "provider", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("u1", "customer", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaims(token)
	require.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("u1", "customer", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "different-secret"
	_, _, err = ExtractClaims(token)
	require.Error(t, err)
}
