package httpx

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/aussiebroadwan/huddle/pkg/slogx"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// IdempotencyKeyHeader carries a client-generated UUID per logical submission.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotentReplayHeader marks responses served from a stored result.
	IdempotentReplayHeader = "Idempotent-Replayed"

	idempotencyKeyPrefix = "idempotency:"
)

type idempotencyStatus string

const (
	statusProcessing idempotencyStatus = "processing"
	statusCompleted  idempotencyStatus = "completed"
)

type idempotencyRecord struct {
	Status       idempotencyStatus `json:"status"`
	RequestHash  string            `json:"request_hash"`
	ResponseCode int               `json:"response_code,omitempty"`
	ResponseBody []byte            `json:"response_body,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// IdempotencyStore is the subset of the redis client the middleware needs.
// *redis.Client satisfies it.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type IdempotencyConfig struct {
	Store IdempotencyStore
	// TTL keeps completed responses around for replay (default 24h).
	TTL time.Duration
	// ProcessingTTL bounds how long an in-flight marker blocks retries (default 60s).
	ProcessingTTL time.Duration
}

// Idempotency replays the stored response when a request is retried with the
// same Idempotency-Key. Requests without the header pass straight through.
// Keys are scoped per authenticated user. Store failures fail open.
func Idempotency(cfg IdempotencyConfig) Middleware {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.ProcessingTTL <= 0 {
		cfg.ProcessingTTL = 60 * time.Second
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			rawKey := r.Header.Get(IdempotencyKeyHeader)
			if rawKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			key, err := uuid.Parse(rawKey)
			if err != nil {
				WriteError(w, http.StatusBadRequest, "invalid_request", "Idempotency-Key must be a UUID")
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					WriteError(w, http.StatusRequestEntityTooLarge, "invalid_request", "Request body too large")
					return
				}
				WriteError(w, http.StatusBadRequest, "invalid_request", "Unable to read request body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			userID, _ := UserIDFromContext(ctx)
			storeKey := idempotencyKeyPrefix + userID + ":" + key.String()
			hash := requestHash(r, body)

			marker, _ := json.Marshal(idempotencyRecord{
				Status:      statusProcessing,
				RequestHash: hash,
				CreatedAt:   time.Now().UTC(),
			})

			acquired, err := cfg.Store.SetNX(ctx, storeKey, marker, cfg.ProcessingTTL).Result()
			if err != nil {
				log.Warn("idempotency store unavailable, serving without protection", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if !acquired {
				replayExisting(ctx, w, cfg.Store, storeKey, hash)
				return
			}

			rec := &capturingWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			// Server errors release the key so the client can retry.
			if rec.status >= http.StatusInternalServerError {
				if err := cfg.Store.Del(ctx, storeKey).Err(); err != nil {
					log.Warn("failed to release idempotency key", "err", err)
				}
				return
			}

			done, _ := json.Marshal(idempotencyRecord{
				Status:       statusCompleted,
				RequestHash:  hash,
				ResponseCode: rec.status,
				ResponseBody: rec.body.Bytes(),
				CreatedAt:    time.Now().UTC(),
			})
			if err := cfg.Store.Set(context.WithoutCancel(ctx), storeKey, done, cfg.TTL).Err(); err != nil {
				log.Warn("failed to store idempotent response", "err", err)
			}
		})
	}
}

func replayExisting(ctx context.Context, w http.ResponseWriter, st IdempotencyStore, storeKey, hash string) {
	raw, err := st.Get(ctx, storeKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Expired between SETNX and GET; let the client retry.
			WriteError(w, http.StatusConflict, "request_in_progress", "Please retry the request")
			return
		}
		slogx.FromContext(ctx).Warn("failed to read idempotency record", "err", err)
		WriteError(w, http.StatusServiceUnavailable, "server_error", "Unable to verify idempotency key")
		return
	}

	var record idempotencyRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "server_error", "Corrupt idempotency record")
		return
	}

	switch {
	case record.RequestHash != hash:
		WriteError(w, http.StatusUnprocessableEntity, "idempotency_key_reused",
			"Idempotency-Key was already used with a different request")
	case record.Status == statusProcessing:
		WriteError(w, http.StatusConflict, "request_in_progress",
			"A request with this Idempotency-Key is still being processed")
	default:
		NoCache(w)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(IdempotentReplayHeader, "true")
		w.WriteHeader(record.ResponseCode)
		_, _ = w.Write(record.ResponseBody)
	}
}

func requestHash(r *http.Request, body []byte) string {
	h := sha256.New()
	h.Write([]byte(r.Method))
	h.Write([]byte(r.URL.Path))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

type capturingWriter struct {
	http.ResponseWriter

	status int
	body   bytes.Buffer
}

func (c *capturingWriter) WriteHeader(code int) {
	c.status = code
	c.ResponseWriter.WriteHeader(code)
}

func (c *capturingWriter) Write(b []byte) (int, error) {
	c.body.Write(b)
	return c.ResponseWriter.Write(b)
}
