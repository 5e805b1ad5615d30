package jwtx_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/huddle/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "bartab-auth"

func newSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()
	pemKey, err := jwtx.GenerateEd25519PEM()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	signer := newSigner(t, "test-key-eddsa")
	require.Equal(t, "test-key-eddsa", signer.KID())

	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims(
		"person-456",
		[]string{"events:read", "events:write"},
		5*time.Minute,
		testIssuer,
		[]string{"huddle"},
		now,
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	jwks := keyset.PublicJWKS()
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)
	require.NotEmpty(t, jwks.Keys[0].X)

	verifier := jwtx.NewVerifierEdDSA(keyset, testIssuer, []string{"huddle"})

	parsed, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Issuer, parsed.Issuer)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.ElementsMatch(t, claims.Audience, parsed.Audience)
	require.ElementsMatch(t, claims.Scopes, parsed.Scopes)
}

func TestEdDSAVerifyFailsForWrongIssuer(t *testing.T) {
	signer := newSigner(t, "k1")

	claims := jwtx.NewAccessClaims("person-789", nil, time.Minute, testIssuer, nil, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	verifier := jwtx.NewVerifierEdDSA(keyset, "wrong-issuer", nil)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestEdDSAVerifyFailsForWrongAudience(t *testing.T) {
	signer := newSigner(t, "k1")

	claims := jwtx.NewAccessClaims("person-1", nil, time.Minute, testIssuer, []string{"other"}, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	verifier := jwtx.NewVerifierEdDSA(keyset, testIssuer, []string{"huddle"})
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrAudience)
}

func TestEdDSAVerifyFailsForUnknownKey(t *testing.T) {
	signer1 := newSigner(t, "key1")
	signer2 := newSigner(t, "key2")

	claims := jwtx.NewAccessClaims("person-unknown", nil, time.Minute, testIssuer, nil, time.Now().UTC())
	token, err := signer1.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer2))

	verifier := jwtx.NewVerifierEdDSA(keyset, testIssuer, nil)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}

func TestEdDSAVerifyFailsForExpiredToken(t *testing.T) {
	signer := newSigner(t, "k1")

	claims := jwtx.NewAccessClaims("person-1", nil, time.Minute, testIssuer, nil, time.Now().Add(-time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	_, err = jwtx.NewVerifierEdDSA(keyset, testIssuer, nil).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestEdDSAValidateFailsForInvalidKey(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("test", []byte("not-a-pem-key"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid PEM")
}

func TestEdDSACommonVerifierAdapter(t *testing.T) {
	signer := newSigner(t, "test-key")

	claims := jwtx.NewAccessClaims("person-123", []string{"events:read"}, time.Minute, testIssuer, nil, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	verifier := jwtx.NewCommonEdDSA(keyset, testIssuer, nil)

	parsed, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.ElementsMatch(t, claims.Scopes, parsed.Scopes)
}

func TestResetFromJWKS(t *testing.T) {
	t.Run("replaces keys", func(t *testing.T) {
		old := newSigner(t, "old")
		fresh := newSigner(t, "fresh")

		keyset := jwtx.NewKeySet()
		require.NoError(t, keyset.AddSigner(old))

		require.NoError(t, keyset.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{fresh.PublicJWK()}}))

		_, err := keyset.Get("old")
		require.ErrorIs(t, err, jwtx.ErrNoKey)
		_, err = keyset.Get("fresh")
		require.NoError(t, err)
	})

	t.Run("skips foreign key types", func(t *testing.T) {
		signer := newSigner(t, "ed")
		keyset := jwtx.NewKeySet()

		jwks := jwtx.JWKS{Keys: []jwtx.JWK{{Kty: "RSA", Kid: "rsa"}, signer.PublicJWK()}}
		require.NoError(t, keyset.ResetFromJWKS(jwks))
		require.True(t, keyset.IsReady())
		require.Len(t, keyset.PublicJWKS().Keys, 1)
	})

	t.Run("fails when nothing usable", func(t *testing.T) {
		keyset := jwtx.NewKeySet()
		err := keyset.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{{Kty: "EC", Kid: "ec"}}})
		require.Error(t, err)
		require.False(t, keyset.IsReady())
	})
}

func TestFetchJWKS(t *testing.T) {
	signer := newSigner(t, "remote")
	jwks := jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwks)
	}))
	defer srv.Close()

	got, err := jwtx.FetchJWKS(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, jwks, got)

	t.Run("non-200 is an error", func(t *testing.T) {
		bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer bad.Close()

		_, err := jwtx.FetchJWKS(context.Background(), bad.Client(), bad.URL)
		require.Error(t, err)
	})
}

func TestLoadJWKSFile(t *testing.T) {
	signer := newSigner(t, "file")
	raw, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jwks.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	got, err := jwtx.LoadJWKSFile(path)
	require.NoError(t, err)
	require.Len(t, got.Keys, 1)
	require.Equal(t, "file", got.Keys[0].Kid)

	_, err = jwtx.LoadJWKSFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
