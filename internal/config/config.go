package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	// ApplicationName is reported to Postgres (pg_stat_activity).
	ApplicationName string
	// StatementTimeout bounds every statement server side; 0 keeps the server default.
	StatementTimeout time.Duration
}

// MinIOConfig holds object storage settings for uploaded landing page images.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base URL under which objects are publicly readable
	// (e.g. a CDN or a bucket with an anonymous read policy). When empty,
	// images are proxied through the API under /media.
	PublicURL      string
	MaxUploadBytes int64
}

// AuthConfig selects how bearer tokens are verified.
//
// Mode "jwt" verifies HS256 access tokens locally with JWTSecret.
// Mode "supabase" asks the hosted auth service who the token belongs to.
type AuthConfig struct {
	Mode        string
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	SupabaseURL string
	SupabaseKey string

	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration
}

// RedisConfig holds the rendered page cache settings. An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	PageTTL  time.Duration
}

// RateLimitConfig bounds requests per client IP on public routes.
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost       string
	Port          string
	Env           string
	LogLevel      string
	PublicBaseURL string
	Database      DatabaseConfig
	MinIO         MinIOConfig
	Auth          AuthConfig
	Redis         RedisConfig
	RateLimit     RateLimitConfig
}

// IsProduction reports whether the service runs with production defaults.
func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:       getEnv("APP_HOST", "localhost:8080"),
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			ApplicationName:    getEnv("DB_APPLICATION_NAME", "salespage"),
			StatementTimeout:   getEnvDuration("DB_STATEMENT_TIMEOUT", 10*time.Second),
		},
		MinIO: MinIOConfig{
			Endpoint:       getEnv("MINIO_ENDPOINT", ""),
			AccessKey:      getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:      getEnv("MINIO_SECRET_KEY", ""),
			Bucket:         getEnv("MINIO_BUCKET", "landing-images"),
			UseSSL:         getEnvBool("MINIO_USE_SSL", false),
			PublicURL:      strings.TrimRight(getEnv("MINIO_PUBLIC_URL", ""), "/"),
			MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 5<<20)),
		},
		Auth: AuthConfig{
			Mode:               getEnv("AUTH_MODE", "jwt"),
			JWTSecret:          getEnv("AUTH_JWT_SECRET", ""),
			JWTIssuer:          getEnv("AUTH_JWT_ISSUER", ""),
			JWTAudience:        getEnv("AUTH_JWT_AUDIENCE", "authenticated"),
			SupabaseURL:        getEnv("SUPABASE_URL", ""),
			SupabaseKey:        getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
			BreakerMaxFailures: uint32(getEnvInt("AUTH_BREAKER_MAX_FAILURES", 5)),
			BreakerTimeout:     getEnvDuration("AUTH_BREAKER_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			PageTTL:  getEnvDuration("PAGE_CACHE_TTL", 5*time.Minute),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
			Burst:     getEnvInt("RATE_LIMIT_BURST", 30),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvDuration accepts Go duration strings ("90s", "5m") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
