package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Supported deployment environments.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Storage drivers.
const (
	StorageS3    = "s3"
	StorageLocal = "local"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseURL    string
	DBSecretName   string
	DBHost         string
	DBName         string
	DBPort         string
	DBSSLMode      string
	DBMaxOpenConns int

	// AWS
	AWSRegion          string
	AWSEndpointURL     string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	// Document storage
	StorageDriver string
	StoragePath   string
	S3BucketName  string
	S3SecretName  string

	// Rendering
	AssetsPath string

	// Auth
	JWTSecret string

	// HTTP
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int

	// Background Workers
	WorkerCount int

	// Sentry
	SentryDSN string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", EnvDevelopment)
	v.SetDefault("DB_SSL_MODE", "require")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("STORAGE_PATH", "./storage")
	v.SetDefault("ASSETS_PATH", "./assets")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("WORKER_COUNT", 2)

	cfg := &Config{
		Port:               v.GetString("PORT"),
		Environment:        strings.ToLower(strings.TrimSpace(v.GetString("ENVIRONMENT"))),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		DBSecretName:       v.GetString("DB_SECRET_NAME"),
		DBHost:             v.GetString("DB_HOST"),
		DBName:             v.GetString("DB_NAME"),
		DBPort:             v.GetString("DB_PORT"),
		DBSSLMode:          v.GetString("DB_SSL_MODE"),
		DBMaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
		AWSRegion:          v.GetString("AWS_REGION"),
		AWSEndpointURL:     v.GetString("AWS_ENDPOINT_URL"),
		AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		StorageDriver:      strings.ToLower(v.GetString("STORAGE_DRIVER")),
		StoragePath:        v.GetString("STORAGE_PATH"),
		S3BucketName:       v.GetString("S3_BUCKET_NAME"),
		S3SecretName:       v.GetString("S3_SECRET_NAME"),
		AssetsPath:         v.GetString("ASSETS_PATH"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		AllowedOrigins:     splitList(v.GetString("ALLOWED_ORIGINS")),
		RateLimitRPS:       v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:     v.GetInt("RATE_LIMIT_BURST"),
		WorkerCount:        v.GetInt("WORKER_COUNT"),
		SentryDSN:          v.GetString("SENTRY_DSN"),
	}

	switch cfg.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return nil, fmt.Errorf("environment not configured correctly: %q", cfg.Environment)
	}

	if cfg.StorageDriver == "" {
		cfg.StorageDriver = StorageS3
		if cfg.Environment == EnvDevelopment {
			cfg.StorageDriver = StorageLocal
		}
	}
	if cfg.StorageDriver != StorageS3 && cfg.StorageDriver != StorageLocal {
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q", StorageS3, StorageLocal)
	}
	if cfg.StorageDriver == StorageS3 && cfg.S3BucketName == "" && cfg.S3SecretName == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME or S3_SECRET_NAME is required for s3 storage")
	}

	if cfg.DatabaseURL == "" && cfg.DBSecretName == "" {
		return nil, fmt.Errorf("DATABASE_URL or DB_SECRET_NAME is required")
	}

	if cfg.JWTSecret == "" && cfg.IsDeployed() {
		return nil, fmt.Errorf("JWT_SECRET is required in %s", cfg.Environment)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-in-production"
	}

	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 1
	}

	return cfg, nil
}

// IsDeployed reports whether the service runs in staging or production.
func (c *Config) IsDeployed() bool {
	return c.Environment == EnvStaging || c.Environment == EnvProduction
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
