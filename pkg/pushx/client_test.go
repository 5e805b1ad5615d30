package pushx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/huddle/pkg/pushx"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	t.Run("posts one batch and returns tickets", func(t *testing.T) {
		var got pushx.Message
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			_, _ = w.Write([]byte(`{"data":[{"status":"ok","id":"a"},{"status":"ok","id":"b"}]}`))
		}))
		defer srv.Close()

		c := pushx.NewClient(srv.URL, "secret", time.Second)
		tickets, err := c.Send(context.Background(), pushx.Message{
			To:    []string{"tok-1", "tok-2"},
			Title: "Movie night has been Scheduled",
			Body:  "Alice just scheduled a new event.",
			Data:  map[string]any{"navigate": map[string]any{"route": "Event"}},
		})
		require.NoError(t, err)
		require.Len(t, tickets, 2)
		require.Equal(t, 1, calls)
		require.Equal(t, []string{"tok-1", "tok-2"}, got.To)
		require.Equal(t, "Movie night has been Scheduled", got.Title)
		require.Contains(t, got.Data, "navigate")
	})

	t.Run("ticket errors are reported per token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[
				{"status":"ok","id":"a"},
				{"status":"error","message":"not registered","details":{"error":"DeviceNotRegistered"}}
			]}`))
		}))
		defer srv.Close()

		c := pushx.NewClient(srv.URL, "", time.Second)
		tickets, err := c.Send(context.Background(), pushx.Message{To: []string{"good", "stale"}})
		require.Error(t, err)
		require.Len(t, tickets, 2)

		var tf *pushx.TicketFailure
		require.True(t, errors.As(err, &tf))
		require.Equal(t, "stale", tf.Token)
		require.Equal(t, "DeviceNotRegistered", tf.Code)
	})

	t.Run("request level failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"errors":[{"code":"TOO_MANY_REQUESTS","message":"slow down"}]}`))
		}))
		defer srv.Close()

		c := pushx.NewClient(srv.URL, "", time.Second)
		_, err := c.Send(context.Background(), pushx.Message{To: []string{"tok"}})

		var reqErr *pushx.RequestError
		require.True(t, errors.As(err, &reqErr))
		require.Equal(t, http.StatusTooManyRequests, reqErr.StatusCode)
		require.Equal(t, "TOO_MANY_REQUESTS", reqErr.Code)
	})

	t.Run("no recipients", func(t *testing.T) {
		c := pushx.NewClient("http://127.0.0.1:1", "", time.Second)
		_, err := c.Send(context.Background(), pushx.Message{})
		require.ErrorIs(t, err, pushx.ErrNoRecipients)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := pushx.NewClient(url, "", time.Second)
		_, err := c.Send(context.Background(), pushx.Message{To: []string{"tok"}})
		require.Error(t, err)
	})
}

func TestNewClientDefaults(t *testing.T) {
	c := pushx.NewClient("", "", 0)
	require.Equal(t, pushx.DefaultEndpoint, c.Endpoint)
	require.Equal(t, 10*time.Second, c.HTTPClient.Timeout)
}
