// Package config holds the moderation constants and the process settings.
// Settings are read once at startup and never reloaded.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type Settings struct {
	Env      string
	HTTPPort string
	LogLevel string

	DatabaseDSN string
	RedisAddr   string

	TelegramToken string
	ModChatID     int64 // chat where tickets are advertised to moderators
	WatchedChatID int64 // group chat fed through the automated-flag path

	JWTSecret string

	ScorerURL string
	ScorerKey string

	// Quorum is the number of independent verdicts required before the
	// consensus engine runs.
	Quorum int

	AutoReportThreshold float64
	AutoDeleteThreshold float64
}

// Load reads settings from the environment and validates them.
func Load() (*Settings, error) {
	s := &Settings{
		Env:           getEnv("APP_ENV", "development"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=user password=password dbname=modflowdb port=5432 sslmode=disable"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		JWTSecret:     getEnv("JWT_SECRET", "modflow-development-secret"),
		ScorerURL:     getEnv("SCORER_URL", "https://commentanalyzer.googleapis.com/v1alpha1/comments:analyze"),
		ScorerKey:     getEnv("SCORER_KEY", ""),
	}

	var err error
	if s.ModChatID, err = parseInt64(getEnv("MOD_CHAT_ID", "0")); err != nil {
		return nil, fmt.Errorf("config: MOD_CHAT_ID: %w", err)
	}
	if s.WatchedChatID, err = parseInt64(getEnv("WATCHED_CHAT_ID", "0")); err != nil {
		return nil, fmt.Errorf("config: WATCHED_CHAT_ID: %w", err)
	}
	if s.Quorum, err = strconv.Atoi(getEnv("REVIEW_QUORUM", "1")); err != nil {
		return nil, fmt.Errorf("config: REVIEW_QUORUM: %w", err)
	}
	if s.AutoReportThreshold, err = parseFloat(getEnv("AUTO_REPORT_THRESHOLD", "0.90")); err != nil {
		return nil, fmt.Errorf("config: AUTO_REPORT_THRESHOLD: %w", err)
	}
	if s.AutoDeleteThreshold, err = parseFloat(getEnv("AUTO_DELETE_THRESHOLD", "0.97")); err != nil {
		return nil, fmt.Errorf("config: AUTO_DELETE_THRESHOLD: %w", err)
	}

	if s.Quorum < 1 {
		return nil, fmt.Errorf("config: REVIEW_QUORUM must be at least 1, got %d", s.Quorum)
	}
	if s.AutoDeleteThreshold < s.AutoReportThreshold {
		return nil, fmt.Errorf("config: AUTO_DELETE_THRESHOLD (%v) must not be below AUTO_REPORT_THRESHOLD (%v)",
			s.AutoDeleteThreshold, s.AutoReportThreshold)
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func parseInt64(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}

func parseFloat(v string) (float64, error) {
	return strconv.ParseFloat(v, 64)
}
