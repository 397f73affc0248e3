package cmd

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	JWTSecret          string
	JWTExpiry          time.Duration
	ThrottleRate       string
	RedisURL           string
	RedisAddr          string
	RedisPassword      string
	CartTTL            time.Duration
	CartExpirySchedule string
	TelegramToken      string
	TelegramChatID     int64
}

// LoadConfig reads the environment, after loading .env when one exists.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	jwtExpiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("JWT_EXPIRY: %w", err)
	}
	cartTTL, err := time.ParseDuration(getEnv("CART_TTL", "72h"))
	if err != nil {
		return Config{}, fmt.Errorf("CART_TTL: %w", err)
	}
	var chatID int64
	if v := getEnv("TELEGRAM_CHAT_ID", ""); v != "" {
		if chatID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("TELEGRAM_CHAT_ID: %w", err)
		}
	}

	return Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", "postgres"),
		DBName:             getEnv("DB_NAME", "littlelemon"),
		DBSslMode:          getEnv("DB_SSLMODE", "disable"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpiry:          jwtExpiry,
		ThrottleRate:       getEnv("THROTTLE_RATE", "60/minute"),
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		CartTTL:            cartTTL,
		CartExpirySchedule: getEnv("CART_EXPIRY_SCHEDULE", "@hourly"),
		TelegramToken:      getEnv("TELEGRAM_TOKEN", ""),
		TelegramChatID:     chatID,
	}, nil
}

// DatabaseURL is the connection string shared by GORM and the migration pool.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
