package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const devJWTSecret = "animal-rescue-dev-secret"

// Config holds runtime settings read from the environment.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	JWTSecret      string
	TokenExpiry    time.Duration
	UploadDir      string
	MaxUploadBytes int64
	AllowedOrigins []string
	FanOutWorkers  int
	BacklogCron    string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using process environment")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("MONGO_DB", "animal_rescue"),
		JWTSecret:      getEnv("JWT_SECRET", devJWTSecret),
		TokenExpiry:    getDuration("TOKEN_EXPIRY", 24*time.Hour),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: int64(getInt("MAX_UPLOAD_MB", 10)) << 20,
		AllowedOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		FanOutWorkers:  getInt("FANOUT_WORKERS", 8),
		BacklogCron:    getEnv("BACKLOG_CRON", "@every 5m"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
	}

	if cfg.JWTSecret == devJWTSecret {
		logrus.Warn("JWT_SECRET not set, using development secret")
	}
	if cfg.FanOutWorkers < 1 {
		cfg.FanOutWorkers = 1
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithField("key", key).Warn("Invalid integer in environment, using default")
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.WithField("key", key).Warn("Invalid duration in environment, using default")
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
