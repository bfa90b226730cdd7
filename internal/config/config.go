package config

import (
	"os"
	"strconv"
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
}

// SeedConfig holds settings for the seed dataset source.
//
// By default the dataset is fetched over HTTP from URL. When Bucket is set,
// the loader reads Object from an S3-compatible endpoint instead, using the
// MinIO credentials below.
type SeedConfig struct {
	URL             string
	FetchTimeoutSec int

	Bucket    string
	Object    string
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port     string
	Database DatabaseConfig
	Seed     SeedConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", "postgres"),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", "sales"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Seed: SeedConfig{
			URL:             getEnv("SEED_URL", "https://s3.amazonaws.com/roxiler.com/product_transaction.json"),
			FetchTimeoutSec: getEnvInt("SEED_FETCH_TIMEOUT_SEC", 30),
			Bucket:          getEnv("SEED_BUCKET", ""),
			Object:          getEnv("SEED_OBJECT", "product_transaction.json"),
			Endpoint:        getEnv("MINIO_ENDPOINT", ""),
			AccessKey:       getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:       getEnv("MINIO_SECRET_KEY", ""),
			UseSSL:          getEnvBool("MINIO_USE_SSL", false),
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
