package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfig()

		require.Equal(t, "scheduler.db", cfg.DatabaseFile)
		require.Equal(t, "UTC", cfg.Timezone)
		require.Equal(t, "bartab-auth", cfg.Issuer)
		require.Empty(t, cfg.Audience)
		require.Equal(t, 15*time.Minute, cfg.JWKSRefreshInterval)
		require.Equal(t, 30*time.Second, cfg.DispatchTimeout)
		require.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
		require.Equal(t, 8080, cfg.Port)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SCHEDULER_TIMEZONE", "Australia/Sydney")
		t.Setenv("AUTH_AUDIENCE", "huddle, bartab-chat ,")
		t.Setenv("DISPATCH_TIMEOUT", "5s")
		t.Setenv("HOUSEKEEPING_INTERVAL", "90")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("PORT", "not-a-port")

		cfg := LoadConfig()

		require.Equal(t, "Australia/Sydney", cfg.Timezone)
		require.Equal(t, []string{"huddle", "bartab-chat"}, cfg.Audience)
		require.Equal(t, 5*time.Second, cfg.DispatchTimeout)
		require.Equal(t, 90*time.Minute, cfg.HousekeepingInterval)
		require.Equal(t, 3, cfg.RedisDB)
		require.Equal(t, 8080, cfg.Port)
	})
}
