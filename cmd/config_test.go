package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "JWT_EXPIRY", "CART_TTL", "THROTTLE_RATE", "TELEGRAM_CHAT_ID", "DB_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 72*time.Hour, cfg.CartTTL)
	assert.Equal(t, "60/minute", cfg.ThrottleRate)
	assert.Equal(t, "littlelemon", cfg.DBName)
	assert.Zero(t, cfg.TelegramChatID)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("JWT_EXPIRY", "15m")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")
	t.Setenv("CART_EXPIRY_SCHEDULE", "*/5 * * * *")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, int64(-100200300), cfg.TelegramChatID)
	assert.Equal(t, "*/5 * * * *", cfg.CartExpirySchedule)
}

func TestLoadConfig_RejectsMalformedValues(t *testing.T) {
	t.Setenv("CART_TTL", "three days")
	_, err := LoadConfig()
	require.ErrorContains(t, err, "CART_TTL")
}

func TestConfig_DatabaseURL(t *testing.T) {
	cfg := Config{
		DBHost: "db", DBPort: "5432", DBUser: "lemon", DBPassword: "p@ss",
		DBName: "littlelemon", DBSslMode: "disable",
	}
	assert.Equal(t, "postgres://lemon:p%40ss@db:5432/littlelemon?sslmode=disable", cfg.DatabaseURL())
}
