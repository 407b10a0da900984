package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.IssueAccessToken(42, "Ana", "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	usuarioID, err := m.VerifyToken(token, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), usuarioID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.IssueRefreshToken(7)
	require.NoError(t, err)

	usuarioID, err := m.VerifyToken(token, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, int64(7), usuarioID)
}

func TestTokenTypeCrossRejection(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	access, err := m.IssueAccessToken(1, "Ana", "ana@example.com")
	require.NoError(t, err)
	refresh, err := m.IssueRefreshToken(1)
	require.NoError(t, err)

	_, err = m.VerifyToken(access, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyToken(refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, -time.Minute)

	token, err := m.IssueAccessToken(1, "Ana", "ana@example.com")
	require.NoError(t, err)

	_, err = m.VerifyToken(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedTokenRejected(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)
	other := NewManager("other-secret", time.Hour, 24*time.Hour)

	token, err := m.IssueAccessToken(1, "Ana", "ana@example.com")
	require.NoError(t, err)

	_, err = other.VerifyToken(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyToken("not-a-token", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
