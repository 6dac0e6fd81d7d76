package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	tok, err := GenerateToken(secret, 42, "alice", TypeAccess, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TypeAccess, tok)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "42", claims.Subject)
}

func TestParseToken_WrongType(t *testing.T) {
	tok, err := GenerateToken(secret, 1, "bob", TypeRefresh, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, tok)
	assert.ErrorIs(t, err, ErrTokenType)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := GenerateToken(secret, 1, "bob", TypeAccess, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), TypeAccess, tok)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := GenerateToken(secret, 1, "bob", TypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, tok)
	assert.Error(t, err)
}
