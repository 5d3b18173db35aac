//go:build unit

package session_test

import (
	"testing"
	"time"

	"stayquote/internal/pkg/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := session.NewService("secret", 30*time.Minute)
	sessionID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(sessionID, time.Now())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
}

func TestExpiredToken(t *testing.T) {
	svc := session.NewService("secret", time.Minute)

	token, _, err := svc.GenerateToken(uuid.New(), time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, session.ErrExpiredToken)
}

func TestWrongSecret(t *testing.T) {
	issuer := session.NewService("secret-a", time.Minute)
	verifier := session.NewService("secret-b", time.Minute)

	token, _, err := issuer.GenerateToken(uuid.New(), time.Now())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestGarbageToken(t *testing.T) {
	svc := session.NewService("secret", time.Minute)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}
