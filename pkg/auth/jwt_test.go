package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	a, err := NewAuthenticator(Config{Secret: "s3cret", Issuer: "joint-ledger"})
	require.NoError(t, err)

	token, err := a.Issue("alice")
	require.NoError(t, err)

	subject, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestVerifyRejects(t *testing.T) {
	a, err := NewAuthenticator(Config{Secret: "s3cret", Issuer: "joint-ledger", TTL: time.Minute})
	require.NoError(t, err)
	other, err := NewAuthenticator(Config{Secret: "other", Issuer: "joint-ledger"})
	require.NoError(t, err)

	forged, err := other.Issue("alice")
	require.NoError(t, err)
	_, err = a.Verify(forged)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = a.Verify("")
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = a.Verify("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)

	token, err := a.Issue("alice")
	require.NoError(t, err)
	a.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = a.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	token, err = BearerToken("bearer  xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer "} {
		_, err := BearerToken(header)
		assert.ErrorIs(t, err, ErrMissingToken, header)
	}
}

func TestNewAuthenticatorRequiresSecret(t *testing.T) {
	_, err := NewAuthenticator(Config{})
	require.Error(t, err)

	a, err := NewAuthenticator(Config{Secret: "x"})
	require.NoError(t, err)
	_, err = a.Issue(" ")
	require.Error(t, err)
}
