package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestKey(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return priv
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("trialdesk", newTestKey(t), time.Hour)
	require.NoError(t, err)

	raw, err := signer.Sign(SessionClaims{
		Email:    "sam@vendor.test",
		TenantID: "01TENANT",
		Role:     "admin",
	})
	require.NoError(t, err)

	claims, err := signer.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "sam@vendor.test", claims.Email)
	require.Equal(t, "01TENANT", claims.TenantID)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "trialdesk", claims.Issuer)
	require.NotEmpty(t, claims.ID)
}

func TestVerifyRejectsExpiredTokens(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("trialdesk", newTestKey(t), time.Nanosecond)
	require.NoError(t, err)

	raw, err := signer.Sign(SessionClaims{Email: "a@b.test"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsForeignKeyAndIssuer(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("trialdesk", newTestKey(t), time.Hour)
	require.NoError(t, err)

	other, err := NewSigner("trialdesk", newTestKey(t), time.Hour)
	require.NoError(t, err)

	raw, err := other.Sign(SessionClaims{Email: "a@b.test"})
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrTokenInvalid)

	wrongIssuer, err := NewSigner("someone-else", newTestKey(t), time.Hour)
	require.NoError(t, err)
	raw2, err := wrongIssuer.Sign(SessionClaims{Email: "a@b.test"})
	require.NoError(t, err)

	_, err = signer.Verify(raw2)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewSignerValidation(t *testing.T) {
	t.Parallel()

	_, err := NewSigner("", newTestKey(t), time.Hour)
	require.Error(t, err)

	_, err = NewSigner("trialdesk", nil, time.Hour)
	require.Error(t, err)

	signer, err := NewSigner("trialdesk", newTestKey(t), 0)
	require.NoError(t, err)
	require.Equal(t, DefaultSessionTTL, signer.TTL())
}
