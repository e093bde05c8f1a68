package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAdminToken(t *testing.T) {
	m := NewManager("test-secret")

	tok, err := m.GenerateAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.ValidateAdminToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, m.IsValidAdminToken(tok))
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a")
	verifier := NewManager("secret-b")

	tok, err := issuer.GenerateAdminToken()
	require.NoError(t, err)

	_, err = verifier.ValidateAdminToken(tok)
	assert.Error(t, err)
	assert.False(t, verifier.IsValidAdminToken(tok))
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")
	assert.False(t, m.IsValidAdminToken(""))
	assert.False(t, m.IsValidAdminToken("not.a.token"))
}

func TestTokenExpiresAfterValidityWindow(t *testing.T) {
	issued := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)
	m := NewManager("test-secret")
	m.now = func() time.Time { return issued }

	tok, err := m.GenerateAdminToken()
	require.NoError(t, err)

	// Still valid just inside the window.
	m.now = func() time.Time { return issued.Add(TokenValidity - time.Minute) }
	assert.True(t, m.IsValidAdminToken(tok))

	// Expired just past the window.
	m.now = func() time.Time { return issued.Add(TokenValidity + time.Minute) }
	assert.False(t, m.IsValidAdminToken(tok))
}
