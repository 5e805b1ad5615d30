package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/huddle/pkg/jwtx"
)

var ErrNoKeySource = errors.New("one of AUTH_JWKS_FILE or AUTH_JWKS_URL must be set")

// InitVerifierKeys loads the auth service's public keys. A JWKS file is
// read once; a JWKS URL is fetched now and then kept fresh by the returned
// KeyRefresher, which is nil in file mode.
func InitVerifierKeys(ctx context.Context, cfg Config, logger *slog.Logger) (*jwtx.KeySet, *KeyRefresher, error) {
	keys := jwtx.NewKeySet()

	switch {
	case cfg.JWKSFile != "":
		jwks, err := jwtx.LoadJWKSFile(cfg.JWKSFile)
		if err != nil {
			return nil, nil, err
		}
		if err := keys.ResetFromJWKS(jwks); err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", cfg.JWKSFile, err)
		}
		logger.Info("verification keys loaded from file", "path", cfg.JWKSFile, "keys", len(jwks.Keys))
		return keys, nil, nil

	case cfg.JWKSURL != "":
		r := &KeyRefresher{
			Keys:     keys,
			URL:      cfg.JWKSURL,
			Client:   &http.Client{Timeout: 10 * time.Second},
			Interval: cfg.JWKSRefreshInterval,
			Logger:   logger,
			stopCh:   make(chan struct{}),
			doneCh:   make(chan struct{}),
		}
		// The auth service may still be starting; the refresher retries and
		// readyz reports the missing keys until then.
		if err := r.Refresh(ctx); err != nil {
			logger.Warn("initial JWKS fetch failed", "url", cfg.JWKSURL, "err", err)
		}
		return keys, r, nil
	}

	return nil, nil, ErrNoKeySource
}

// KeyRefresher periodically re-fetches the JWKS so rotated keys are picked up.
type KeyRefresher struct {
	Keys     *jwtx.KeySet
	URL      string
	Client   *http.Client
	Interval time.Duration
	Logger   *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// Refresh fetches the JWKS once and swaps it in.
func (r *KeyRefresher) Refresh(ctx context.Context) error {
	jwks, err := jwtx.FetchJWKS(ctx, r.Client, r.URL)
	if err != nil {
		return err
	}
	return r.Keys.ResetFromJWKS(jwks)
}

// Start begins the background refresh loop. Call Stop to shut it down.
func (r *KeyRefresher) Start() {
	if r.Interval <= 0 {
		r.Interval = 15 * time.Minute
	}
	go r.run()
	r.Logger.Info("jwks refresher started", "url", r.URL, "interval", r.Interval)
}

// Stop signals the loop to stop and waits for it to finish.
func (r *KeyRefresher) Stop() {
	close(r.stopCh)
	<-r.doneCh
	r.Logger.Info("jwks refresher stopped")
}

func (r *KeyRefresher) run() {
	defer close(r.doneCh)

	interval := r.Interval
	if !r.Keys.IsReady() {
		interval = 5 * time.Second
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err := r.Refresh(ctx)
			cancel()

			next := r.Interval
			if err != nil {
				r.Logger.Warn("jwks refresh failed", "url", r.URL, "err", err)
				if !r.Keys.IsReady() {
					next = 5 * time.Second
				}
			}
			timer.Reset(next)
		case <-r.stopCh:
			return
		}
	}
}
