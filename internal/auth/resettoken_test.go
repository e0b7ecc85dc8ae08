package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenRoundTrip(t *testing.T) {
	util := NewResetTokenUtil("test-secret", 0)

	token, err := util.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// URL-safe: JWT compact serialization has no characters needing escaping.
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	userID, err := util.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestResetTokenTamperDetected(t *testing.T) {
	util := NewResetTokenUtil("test-secret", 0)

	token, err := util.Issue(42)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip the first character of each segment in turn. Leading characters
	// are all data bits; trailing base64url characters carry padding bits
	// that do not affect the decoded bytes.
	for i := range parts {
		mutated := make([]string, 3)
		copy(mutated, parts)
		if mutated[i][0] == 'A' {
			mutated[i] = "B" + mutated[i][1:]
		} else {
			mutated[i] = "A" + mutated[i][1:]
		}
		_, err := util.Verify(strings.Join(mutated, "."))
		assert.ErrorIs(t, err, ErrInvalidToken, "mutated segment %d accepted", i)
	}
}

func TestResetTokenExpired(t *testing.T) {
	util := NewResetTokenUtil("test-secret", DefaultResetTokenMaxAge)

	// Sign a capsule issued beyond the max age with the same secret.
	claims := &resetClaims{
		UserID: 42,
		StandardClaims: jwt.StandardClaims{
			IssuedAt: time.Now().Add(-DefaultResetTokenMaxAge - time.Minute).Unix(),
			Issuer:   "levelup-api/reset",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = util.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetTokenWrongSecret(t *testing.T) {
	issuer := NewResetTokenUtil("secret-one", 0)
	verifier := NewResetTokenUtil("secret-two", 0)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetTokenMalformed(t *testing.T) {
	util := NewResetTokenUtil("test-secret", 0)

	for _, bad := range []string{"", "garbage", "a.b.c", strings.Repeat("x", 500)} {
		_, err := util.Verify(bad)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q accepted", bad)
	}
}

func TestResetTokenMissingIssuedAt(t *testing.T) {
	util := NewResetTokenUtil("test-secret", 0)

	claims := &resetClaims{UserID: 42}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = util.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
