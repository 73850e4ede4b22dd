package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env  string
	Port int

	MongoURI string
	MongoDB  string

	AllowedOrigins []string

	// AuthMode is "firebase" (production) or "static" (dev/test HS256 tokens).
	AuthMode          string
	FirebaseProjectID string
	JWTSecret         string

	OTLPEndpoint string

	RateLimit       int
	RateLimitWindow time.Duration
}

func Load() Config {
	env := getEnv("APP_ENV", "dev")
	port := getEnvInt("PORT", 5000)

	return Config{
		Env:  env,
		Port: port,

		MongoURI: getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:  getEnv("MONGO_DB", "campusPilotDB"),

		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),

		AuthMode:          getEnv("AUTH_MODE", "firebase"),
		FirebaseProjectID: getEnv("FIREBASE_PROJECT_ID", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),

		RateLimit:       getEnvInt("RATE_LIMIT", 120),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			fmt.Println(err)
			return fallback
		}

		return num
	}
	return fallback
}

// comma separated list, blanks trimmed and dropped
func getEnvList(key, fallback string) []string {
	raw := getEnv(key, fallback)

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)

		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
