package authtoken

import (
	"testing"
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var NOW = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestIssueAndParse(t *testing.T) {
	j := NewJWT("secret", time.Hour, func() time.Time { return NOW })

	token, err := j.IssueToken(42)
	require.Nil(t, err)
	require.NotEmpty(t, token)

	id, err := j.ParseToken(token)
	require.Nil(t, err)
	require.Equal(t, user.ID(42), id)
}

func TestSubjectIsUserID(t *testing.T) {
	j := NewJWT("secret", time.Hour, func() time.Time { return NOW })
	token, err := j.IssueToken(7)
	require.Nil(t, err)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(string(token), claims)
	require.Nil(t, err)
	require.Equal(t, "7", claims.Subject)
	require.Equal(t, NOW.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestExpiredToken(t *testing.T) {
	now := NOW
	j := NewJWT("secret", time.Hour, func() time.Time { return now })
	token, err := j.IssueToken(42)
	require.Nil(t, err)

	now = NOW.Add(2 * time.Hour)
	_, err = j.ParseToken(token)
	require.ErrorIs(t, err, user.ErrInvalidAuthToken)
}

func TestForeignSecret(t *testing.T) {
	token, err := NewJWT("one", time.Hour, time.Now).IssueToken(42)
	require.Nil(t, err)

	_, err = NewJWT("two", time.Hour, time.Now).ParseToken(token)
	require.ErrorIs(t, err, user.ErrInvalidAuthToken)
}

func TestGarbage(t *testing.T) {
	_, err := NewJWT("secret", time.Hour, time.Now).ParseToken("not-a-token")
	require.ErrorIs(t, err, user.ErrInvalidAuthToken)
}
