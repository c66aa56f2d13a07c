package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("account-1", secret, time.Hour)
	require.NoError(t, err)

	accountID, err := GetAccountIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "account-1", accountID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("account-1", []byte("right"), time.Hour)
	require.NoError(t, err)

	_, err = GetAccountIDFromToken(token, []byte("wrong"))
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken("account-1", secret, -time.Minute)
	require.NoError(t, err)

	_, err = GetAccountIDFromToken(token, secret)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := GetAccountIDFromToken("not-a-token", []byte("secret"))
	assert.Error(t, err)
}
