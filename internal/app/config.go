package app

import (
	"time"

	"github.com/boostithub/portfolio-backend/internal/platform/envutil"
)

type Config struct {
	Port           string
	ServiceName    string
	Version        string
	AllowedOrigins []string
	CacheTTL       time.Duration
}

func LoadConfig() Config {
	cacheTTLSeconds := envutil.Int("CACHE_TTL_SECONDS", 60)
	return Config{
		Port:           envutil.Str("PORT", "8080"),
		ServiceName:    envutil.Str("SERVICE_NAME", "Jennifer Lowe Portfolio API"),
		Version:        envutil.Str("APP_VERSION", "1.0.0"),
		AllowedOrigins: envutil.Strs("CORS_ALLOWED_ORIGINS", nil),
		CacheTTL:       time.Duration(cacheTTLSeconds) * time.Second,
	}
}
