package identity

import (
	"context"
	"testing"
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T) *TokenVerifier {
	t.Helper()
	v, err := NewTokenVerifier(config.Auth{HS256Secret: "secret", Issuer: "shvark-identity"})
	require.NoError(t, err)
	return v
}

func TestNewTokenVerifierRequiresSecretAndIssuer(t *testing.T) {
	_, err := NewTokenVerifier(config.Auth{Issuer: "shvark-identity"})
	assert.Error(t, err)
	_, err = NewTokenVerifier(config.Auth{HS256Secret: "secret"})
	assert.Error(t, err)
}

func TestVerifyRoundTrip(t *testing.T) {
	v := newTestVerifier(t)

	token, err := v.Issue("alice", time.Minute)
	require.NoError(t, err)

	subject, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestVerifyRejects(t *testing.T) {
	v := newTestVerifier(t)
	now := time.Now()

	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}
	valid := jwt.RegisteredClaims{
		Issuer:    "shvark-identity",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Hour))

	foreign := valid
	foreign.Issuer = "someone-else"

	noSubject := valid
	noSubject.Subject = ""

	noExpiry := valid
	noExpiry.ExpiresAt = nil

	cases := map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": sign(jwt.SigningMethodHS256, []byte("other"), valid),
		"wrong alg":    sign(jwt.SigningMethodHS512, []byte("secret"), valid),
		"expired":      sign(jwt.SigningMethodHS256, []byte("secret"), expired),
		"issuer":       sign(jwt.SigningMethodHS256, []byte("secret"), foreign),
		"no subject":   sign(jwt.SigningMethodHS256, []byte("secret"), noSubject),
		"no expiry":    sign(jwt.SigningMethodHS256, []byte("secret"), noExpiry),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerifyLeeway(t *testing.T) {
	v, err := NewTokenVerifier(config.Auth{HS256Secret: "secret", Issuer: "shvark-identity", Leeway: time.Minute})
	require.NoError(t, err)

	token, err := v.Issue("alice", time.Second)
	require.NoError(t, err)

	v.now = func() time.Time { return time.Now().Add(30 * time.Second) }
	subject, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestContextSigners(t *testing.T) {
	verifier := NewContextSignerVerifier()

	ctx := WithSigners(context.Background(), "alice", " ", "")
	ctx = WithSigners(ctx, "bob")

	assert.ElementsMatch(t, []string{"alice", "bob"}, Signers(ctx))
	assert.True(t, verifier.IsAuthorizedSigner(ctx, "alice"))
	assert.True(t, verifier.IsAuthorizedSigner(ctx, "bob"))
	assert.False(t, verifier.IsAuthorizedSigner(ctx, "carol"))
	assert.False(t, verifier.IsAuthorizedSigner(ctx, ""))
	assert.False(t, verifier.IsAuthorizedSigner(context.Background(), "alice"))
}
