package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)

	token, meta, err := tm.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, int64(42), meta.UserID)
	require.True(t, meta.ExpiresAt.After(meta.IssuedAt))

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	tm := &TokenManager{secret: []byte("secret"), ttl: -time.Second}

	token, _, err := tm.Issue(7)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := NewTokenManager("right-secret", time.Hour).Issue(7)
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", time.Hour).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("k", time.Hour).Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
