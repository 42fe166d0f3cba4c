package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	tok, err := m.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute)
	issued := time.Now()
	m.now = func() time.Time { return issued }

	tok, err := m.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenInvalid(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	tok, err := m.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	// wrong secret
	other := NewTokenManager("other-secret", time.Hour)
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// tampered / garbage
	_, err = m.Verify(tok + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = m.Verify("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
