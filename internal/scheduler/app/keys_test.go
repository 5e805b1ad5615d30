package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/huddle/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()
	pemKey, err := jwtx.GenerateEd25519PEM()
	require.NoError(t, err)
	s, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	return s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitVerifierKeys(t *testing.T) {
	t.Run("no source configured", func(t *testing.T) {
		_, _, err := InitVerifierKeys(t.Context(), Config{}, discardLogger())
		require.ErrorIs(t, err, ErrNoKeySource)
	})

	t.Run("from file", func(t *testing.T) {
		signer := newSigner(t, "file-key")
		raw, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}})
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "jwks.json")
		require.NoError(t, os.WriteFile(path, raw, 0o600))

		keys, refresher, err := InitVerifierKeys(t.Context(), Config{JWKSFile: path}, discardLogger())
		require.NoError(t, err)
		require.Nil(t, refresher)
		require.True(t, keys.IsReady())

		_, err = keys.Get("file-key")
		require.NoError(t, err)
	})

	t.Run("from url picks up rotated keys", func(t *testing.T) {
		first := newSigner(t, "k1")
		second := newSigner(t, "k2")

		var rotated atomic.Bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			set := jwtx.JWKS{Keys: []jwtx.JWK{first.PublicJWK()}}
			if rotated.Load() {
				set = jwtx.JWKS{Keys: []jwtx.JWK{second.PublicJWK()}}
			}
			_ = json.NewEncoder(w).Encode(set)
		}))
		defer srv.Close()

		cfg := Config{JWKSURL: srv.URL, JWKSRefreshInterval: 20 * time.Millisecond}
		keys, refresher, err := InitVerifierKeys(t.Context(), cfg, discardLogger())
		require.NoError(t, err)
		require.NotNil(t, refresher)

		_, err = keys.Get("k1")
		require.NoError(t, err)

		rotated.Store(true)
		refresher.Start()
		defer refresher.Stop()

		require.Eventually(t, func() bool {
			_, err := keys.Get("k2")
			return err == nil
		}, 2*time.Second, 10*time.Millisecond)

		_, err = keys.Get("k1")
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("unreachable url is not fatal", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		keys, refresher, err := InitVerifierKeys(t.Context(), Config{JWKSURL: srv.URL}, discardLogger())
		require.NoError(t, err)
		require.NotNil(t, refresher)
		require.False(t, keys.IsReady())
	})
}
