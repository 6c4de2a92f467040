package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	API      APIConfig
	Ingest   IngestConfig
	Report   ReportConfig
	Server   ServerConfig
	Storage  StorageConfig
}

type DatabaseConfig struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string // sqlite only
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type APIConfig struct {
	BaseURL  string
	Cooldown time.Duration
}

type IngestConfig struct {
	SubmissionPageSize  int
	StoreBatchSize      int
	UserInsertBatchSize int
}

type ReportConfig struct {
	OutputPath  string
	IconURLBase string
}

type ServerConfig struct {
	HTTPPort string
	IconsDir string
}

type StorageConfig struct {
	URL        string
	ServiceKey string
	Bucket     string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "cfachievements"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "cfachievements"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "cf.db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		API: APIConfig{
			BaseURL:  getEnv("CF_API_BASE", "https://codeforces.com/api"),
			Cooldown: time.Duration(getEnvAsInt("CF_API_COOLDOWN_MS", 1000)) * time.Millisecond,
		},
		Ingest: IngestConfig{
			SubmissionPageSize:  getEnvAsInt("SUBMISSION_PAGE_SIZE", 100000),
			StoreBatchSize:      getEnvAsInt("STORE_BATCH_SIZE", 20000),
			UserInsertBatchSize: getEnvAsInt("USER_INSERT_BATCH_SIZE", 10000),
		},
		Report: ReportConfig{
			OutputPath:  getEnv("REPORT_OUTPUT_PATH", "achievements.json"),
			IconURLBase: getEnv("ACHIEVEMENT_ICON_URL_BASE", "/static/"),
		},
		Server: ServerConfig{
			HTTPPort: getEnv("HTTP_PORT", "8080"),
			IconsDir: getEnv("ICONS_DIR", "icons"),
		},
		Storage: StorageConfig{
			URL:        getEnv("STORAGE_URL", ""),
			ServiceKey: getEnv("STORAGE_SERVICE_KEY", ""),
			Bucket:     getEnv("STORAGE_BUCKET", "achievement-icons"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
