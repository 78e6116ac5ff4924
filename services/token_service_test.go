package services

import (
	"testing"
	"time"

	"spiderhome-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() models.User {
	return models.User{ID: 7, Username: "admin_spiderhome", Role: models.RoleAdmin}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin_spiderhome", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenLifetime), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret")

	// Issue a token that expired an hour ago.
	svc.now = func() time.Time { return time.Now().Add(-TokenLifetime - time.Hour) }
	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue(testUser())
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
