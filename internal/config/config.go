package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is the externally-injected runtime configuration. Values that the
// original front office kept in browser storage (poll interval, origin list)
// live here with explicit defaults instead.
type Config struct {
	Port         string
	DatabaseURL  string
	StaffToken   string
	CORSOrigins  []string
	PollInterval time.Duration
	GinMode      string
}

func Load() Config {
	if err := godotenv.Load(); err == nil {
		logrus.Info("loaded .env")
	}

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  getEnv("DATABASE_URL", "office.db"),
		StaffToken:   os.Getenv("STAFF_API_TOKEN"),
		PollInterval: getDuration("POLL_INTERVAL_SECONDS", 30*time.Second),
		GinMode:      getEnv("GIN_MODE", "debug"),
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		logrus.WithField("key", key).Warn("invalid duration value, using default")
		return fallback
	}
	return time.Duration(secs) * time.Second
}
