package auth

import (
	"context"
	"testing"
	"time"

	"culturehub/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)
	user := &models.UserProfile{ID: "u-1", Email: "ana@example.com", Role: models.RoleOrganizer}

	token, expiresAt, err := m.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	session, err := m.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "u-1", session.UserID)
	assert.Equal(t, "ana@example.com", session.Email)
	assert.Equal(t, models.RoleOrganizer, session.Role)
}

func TestVerifyRejects(t *testing.T) {
	t.Parallel()

	user := &models.UserProfile{ID: "u-1", Email: "ana@example.com", Role: models.RoleUser}

	expired := NewManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _, err := expired.Issue(user)
	require.NoError(t, err)

	otherSecret, _, err := NewManager("other", time.Hour).Issue(user)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u-1"})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "Expired", token: expiredToken},
		{name: "Wrong secret", token: otherSecret},
		{name: "Unsigned", token: noneToken},
		{name: "Garbage", token: "not-a-token"},
		{name: "Empty", token: ""},
	}

	m := NewManager("secret", time.Hour)

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := m.Verify(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestPasswords(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, CheckPassword(hash, "correct horse"))
	assert.ErrorIs(t, CheckPassword(hash, "battery staple"), ErrInvalidCredentials)
}

func TestContext(t *testing.T) {
	t.Parallel()

	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithSession(context.Background(), &Session{UserID: "u-2", Role: models.RoleAdmin})
	s, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u-2", s.UserID)
	assert.True(t, s.HasRole(models.RoleAdmin))
	assert.False(t, s.HasRole(models.RoleOrganizer))
}
