package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	RedisURL string

	MeiliSearchHost string
	MeiliMasterKey  string

	JWTSecret    string
	JWTTTL       time.Duration
	LogoutGrace  time.Duration
	SplashDelay  time.Duration
	UploadFolder string

	FeeOverdueCron     string
	GalleryCleanupCron string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars).
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		RedisURL: os.Getenv("REDIS_URL"),

		MeiliSearchHost: getEnv("MEILISEARCH_HOST", "http://localhost:7700"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		JWTSecret:    getEnv("JWT_SECRET", "change-me"),
		UploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "pac_school"),

		FeeOverdueCron:     getEnv("FEE_OVERDUE_CRON", "0 1 * * *"),
		GalleryCleanupCron: getEnv("GALLERY_CLEANUP_CRON", "30 1 * * *"),
	}

	cfg.JWTTTL = time.Hour
	if ttlStr := os.Getenv("JWT_TTL_MINUTES"); ttlStr != "" {
		minutes, err := strconv.Atoi(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL_MINUTES: %w", err)
		}
		cfg.JWTTTL = time.Duration(minutes) * time.Minute
	}

	var err error
	cfg.LogoutGrace, err = parseDuration(getEnv("LOGOUT_GRACE", "600ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGOUT_GRACE: %w", err)
	}
	cfg.SplashDelay, err = parseDuration(getEnv("SPLASH_DELAY", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SPLASH_DELAY: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
